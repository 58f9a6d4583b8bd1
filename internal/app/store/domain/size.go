package domain

import (
	"fmt"
	"strings"
)

// Size is a garment size from the store's fixed range.
type Size string

const (
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// AllSizes lists every valid size in display order.
func AllSizes() []Size {
	return []Size{SizeL, SizeXL, SizeXXL}
}

// ParseSize validates and normalizes a size token.
// Unknown tokens are rejected at the boundary so the core never carries
// unchecked size strings.
func ParseSize(s string) (Size, error) {
	switch Size(strings.ToUpper(strings.TrimSpace(s))) {
	case SizeL:
		return SizeL, nil
	case SizeXL:
		return SizeXL, nil
	case SizeXXL:
		return SizeXXL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// IsSizeToken reports whether s names a valid size, case-insensitively.
func IsSizeToken(s string) bool {
	_, err := ParseSize(s)
	return err == nil
}

// Gender is the product's target gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// ParseGender validates and normalizes a gender token.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderUnisex:
		return GenderUnisex, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
}
