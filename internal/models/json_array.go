package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// PlaceholderImage is substituted when a listing has no usable images.
const PlaceholderImage = "/images/placeholder-listing.jpg"

var emptyJSONArray = datatypes.JSON([]byte("[]"))

// DecodeStringArray tolerantly decodes a stored JSON column into a string
// slice. It accepts a plain JSON array, a double-encoded array (an array
// serialized inside a JSON string, which older rows carry), or garbage; the
// fallback is returned for anything unusable.
func DecodeStringArray(raw datatypes.JSON, fallback []string) []string {
	if len(raw) == 0 {
		return fallback
	}

	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &arr); err == nil {
			return arr
		}
	}

	return fallback
}

// EncodeStringArray serializes a native array for storage. Nil becomes [].
func EncodeStringArray(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return emptyJSONArray
	}
	return datatypes.JSON(b)
}

// NormalizeArray rewrites a JSON column in place so clients always receive a
// valid array.
func NormalizeArray(raw *datatypes.JSON) {
	*raw = EncodeStringArray(DecodeStringArray(*raw, []string{}))
}

// NormalizeImages is NormalizeArray with the placeholder image substituted
// when no images survive decoding.
func NormalizeImages(raw *datatypes.JSON) {
	images := DecodeStringArray(*raw, nil)
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}
	*raw = EncodeStringArray(images)
}
