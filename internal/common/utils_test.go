package common

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "valid date",
			in:   "2024-01-10",
			want: "2024-01-10",
		},
		{
			name: "surrounding whitespace",
			in:   " 2024-01-10 ",
			want: "2024-01-10",
		},
		{
			name:    "wrong format",
			in:      "10/01/2024",
			wantErr: true,
		},
		{
			name:    "impossible date",
			in:      "2024-02-30",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{
			name: "integer",
			in:   "1000",
			want: 1000,
		},
		{
			name: "decimal",
			in:   "2.5",
			want: 2.5,
		},
		{
			name: "zero",
			in:   "0",
			want: 0,
		},
		{
			name:    "negative rejected",
			in:      "-1",
			wantErr: true,
		},
		{
			name:    "not a number",
			in:      "abc",
			wantErr: true,
		},
		{
			name:    "infinity rejected",
			in:      "Inf",
			wantErr: true,
		},
		{
			name:    "NaN rejected",
			in:      "NaN",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("", "")
	if err != nil || start != "" || end != "" {
		t.Errorf("empty bounds should stay empty: %q %q %v", start, end, err)
	}

	start, end, err = ParseDateRange("2024-01-01", "2024-01-31")
	if err != nil || start != "2024-01-01" || end != "2024-01-31" {
		t.Errorf("got %q %q %v", start, end, err)
	}

	if _, _, err := ParseDateRange("bad", ""); err == nil {
		t.Error("expected error for malformed start")
	}
	if _, _, err := ParseDateRange("", "bad"); err == nil {
		t.Error("expected error for malformed end")
	}
}
