package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"eleven digit mobile", "01057552576", "010-5755-2576"},
		{"ten digit mobile", "0105755257", "010-575-5257"},
		{"already formatted", "010-5755-2576", "010-5755-2576"},
		{"country code with space", "+82 10-5755-2576", "010-5755-2576"},
		{"country code without space", "+8210-5755-2576", "010-5755-2576"},
		{"country code digits only", "+821057552576", "010-5755-2576"},
		{"extension with space", "582 x400", "400"},
		{"extension without space", "582x400", "400"},
		{"extension upper case", "582X400", "400"},
		{"extension alphanumeric", " 582 x 12-A ", "12-A"},
		{"extension after newline", "582\nx400", "400"},
		{"extension after no-break space", "582\u00a0x400", "400"},
		{"landline unchanged", "02-123-4567", "02-123-4567"},
		{"country code landline to digits", "+82 2-1234-5678", "212345678"},
		{"country code short mobile to digits", "+82 10-123", "010123"},
		{"other office code unchanged", "583 x400", "583 x400"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.raw, opts))
		})
	}
}

func TestFormatPhone_Labels(t *testing.T) {
	opts := DefaultOptions()
	opts.LabelPhone = true
	opts.LabelExtension = true

	assert.Equal(t, "Phone : 010-5755-2576", FormatPhone("+82 10 5755 2576", opts))
	assert.Equal(t, "EXT : 400", FormatPhone("582x400", opts))
	assert.Equal(t, "02-123-4567", FormatPhone("02-123-4567", opts))
}

func TestFormatPhone_CustomOfficeCode(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtensionOfficeCode = "770"

	assert.Equal(t, "1234", FormatPhone("770 x1234", opts))
	assert.Equal(t, "582 x400", FormatPhone("582 x400", opts))
}

func TestCanonicalPhone(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "01057552576", CanonicalPhone("+82 10-5755-2576", opts))
	assert.Equal(t, "01057552576", CanonicalPhone("010 5755 2576", opts))
	assert.Equal(t, "EXT:400", CanonicalPhone("582 x400", opts))
	assert.Equal(t, "021234567", CanonicalPhone("02-123-4567", opts))
	assert.Equal(t, "212345678", CanonicalPhone("+82 2-1234-5678", opts))
}

func TestShowSecondaryPhone(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name      string
		primary   string
		secondary string
		want      bool
	}{
		{"duplicate of mobile primary", "010-1234-5678", "01012345678", false},
		{"duplicate through country code", "+82 10-1234-5678", "010-1234-5678", false},
		{"different number", "010-1234-5678", "010-9999-0000", true},
		{"extension primary always shows", "582x400", "582 x400", true},
		{"blank secondary", "010-1234-5678", "  ", false},
		{"blank primary", "", "010-1234-5678", true},
		{"landline duplicate through country code", "+82 2-1234-5678", "2-1234-5678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowSecondaryPhone(tt.primary, tt.secondary, opts))
		})
	}
}
