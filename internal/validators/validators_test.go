package validators

import (
	"strings"
	"testing"
)

// TestIsValidUUID tests UUID validation
func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name string
		uuid string
		want bool
	}{
		{"valid UUID v4", "550e8400-e29b-41d4-a716-446655440000", true},
		{"valid UUID uppercase", "550E8400-E29B-41D4-A716-446655440000", true},
		{"invalid - too short", "550e8400-e29b-41d4", false},
		{"invalid - no hyphens", "550e8400e29b41d4a716446655440000", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUID(tt.uuid); got != tt.want {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.uuid, got, tt.want)
			}
		})
	}
}

// TestIsValidSemanticVersion tests semantic version validation
func TestIsValidSemanticVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"valid 1.0.0", "1.0.0", true},
		{"valid 4.17.21", "4.17.21", true},
		{"valid with v prefix", "v1.52.0", true},
		{"valid with prerelease", "1.0.0-alpha", true},
		{"valid with build", "1.0.0+build123", true},
		{"valid pseudo-version", "v0.0.0-20250620022241-b7579e27df2b", true},
		{"invalid - two parts", "1.0", false},
		{"invalid - four parts", "1.0.0.0", false},
		{"invalid - devel marker", "(devel)", false},
		{"invalid - empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSemanticVersion(tt.version); got != tt.want {
				t.Errorf("IsValidSemanticVersion(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

// TestValidateLibraryVersion tests version validation errors
func TestValidateLibraryVersion(t *testing.T) {
	if err := ValidateLibraryVersion("v1.52.0", "lodashVersion"); err != nil {
		t.Errorf("ValidateLibraryVersion() unexpected error = %v", err)
	}

	err := ValidateLibraryVersion("", "lodashVersion")
	if err == nil {
		t.Fatal("ValidateLibraryVersion(\"\") expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "lodashVersion:") {
		t.Errorf("error = %q, want field prefix", err.Error())
	}
}

// TestValidateRequestID tests client-supplied request ID validation
func TestValidateRequestID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", false},
		{"opaque token", "req_01.abc:42", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxRequestIDLength+1), true},
		{"header injection", "abc\r\nSet-Cookie: x", true},
		{"spaces", "abc def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequestID(tt.id, "X-Request-ID")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequestID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
