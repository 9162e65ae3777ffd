package mom2pdf

// Notes:
// - LayoutSettings: tests bounds for margins, font sizes, line height and spacing
// - layoutConfig: tests the empty printable area check against a page size
// - Boundary values (exactly min/max) are valid

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLayoutSettings_Validate - LayoutSettings Validation
// ---------------------------------------------------------------------------

func TestLayoutSettings_Validate(t *testing.T) {
	t.Parallel()

	modified := func(fn func(s *LayoutSettings)) *LayoutSettings {
		s := DefaultLayoutSettings()
		fn(s)
		return s
	}

	tests := []struct {
		name    string
		s       *LayoutSettings
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			s:       nil,
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			s:       DefaultLayoutSettings(),
			wantErr: nil,
		},
		{
			name:    "zero margins are valid",
			s:       modified(func(s *LayoutSettings) { s.Margins = Margins{} }),
			wantErr: nil,
		},
		{
			name:    "margin at maximum is valid",
			s:       modified(func(s *LayoutSettings) { s.Margins.Top = MaxMargin }),
			wantErr: nil,
		},
		{
			name:    "negative left margin",
			s:       modified(func(s *LayoutSettings) { s.Margins.Left = -1 }),
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "bottom margin above maximum",
			s:       modified(func(s *LayoutSettings) { s.Margins.Bottom = MaxMargin + 1 }),
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "body font below minimum",
			s:       modified(func(s *LayoutSettings) { s.Fonts.Body = MinFontSize - 0.5 }),
			wantErr: ErrInvalidFontSize,
		},
		{
			name:    "h2 font above maximum",
			s:       modified(func(s *LayoutSettings) { s.Fonts.H2 = MaxFontSize + 1 }),
			wantErr: ErrInvalidFontSize,
		},
		{
			name:    "font at bounds is valid",
			s:       modified(func(s *LayoutSettings) { s.Fonts = FontSizes{Body: MinFontSize, H1: MaxFontSize, H2: MaxFontSize} }),
			wantErr: nil,
		},
		{
			name:    "line height below one",
			s:       modified(func(s *LayoutSettings) { s.LineHeight = 0.9 }),
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "line height above maximum",
			s:       modified(func(s *LayoutSettings) { s.LineHeight = MaxLineHeight + 0.1 }),
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "negative list indent",
			s:       modified(func(s *LayoutSettings) { s.ListIndent = -5 }),
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "blank spacing above maximum",
			s:       modified(func(s *LayoutSettings) { s.BlankSpacing = MaxSpacing + 1 }),
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "zero blank spacing is valid",
			s:       modified(func(s *LayoutSettings) { s.BlankSpacing = 0 }),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLayoutSettings_layoutConfig - Printable Area
// ---------------------------------------------------------------------------

func TestLayoutSettings_layoutConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		margins Margins
		wantErr bool
	}{
		{"defaults on A4", Margins{Left: 50, Right: 50, Top: 120, Bottom: 100}, false},
		{"width consumed", Margins{Left: 300, Right: 300, Top: 10, Bottom: 10}, true},
		{"height consumed", Margins{Left: 10, Right: 10, Top: 500, Bottom: 400}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := DefaultLayoutSettings()
			s.Margins = tt.margins
			cfg, err := s.layoutConfig(595.28, 841.89)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMargin) {
					t.Errorf("layoutConfig() error = %v, want ErrInvalidMargin", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("layoutConfig() unexpected error: %v", err)
			}
			if cfg.PageWidth != 595.28 || cfg.Margins.Top != tt.margins.Top || cfg.BodySize != s.Fonts.Body {
				t.Errorf("layoutConfig() = %+v, does not mirror settings", cfg)
			}
		})
	}
}

func TestDefaultLayoutSettings(t *testing.T) {
	t.Parallel()

	s := DefaultLayoutSettings()
	want := Margins{Left: 50, Right: 50, Top: 120, Bottom: 100}
	if s.Margins != want {
		t.Errorf("Margins = %+v, want %+v", s.Margins, want)
	}
	if s.Fonts != (FontSizes{Body: 12, H1: 16, H2: 14}) {
		t.Errorf("Fonts = %+v, want 12/16/14", s.Fonts)
	}

	// Each call returns a fresh value.
	s.Margins.Left = 1
	if DefaultLayoutSettings().Margins.Left != 50 {
		t.Error("DefaultLayoutSettings() shares state between calls")
	}
}

func TestLayoutSettings_CheckPage(t *testing.T) {
	t.Parallel()

	var nilSettings *LayoutSettings
	if err := nilSettings.CheckPage(595.28, 841.89); err != nil {
		t.Errorf("nil CheckPage() on A4 error: %v", err)
	}

	s := DefaultLayoutSettings()
	s.Margins.Left, s.Margins.Right = 200, 200
	if err := s.CheckPage(300, 400); !errors.Is(err, ErrInvalidMargin) {
		t.Errorf("CheckPage() error = %v, want ErrInvalidMargin", err)
	}
	if err := s.CheckPage(595.28, 841.89); err != nil {
		t.Errorf("CheckPage() on A4 error: %v", err)
	}
}
