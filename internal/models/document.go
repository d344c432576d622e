package models

import "strconv"

// WishlistDocument mirrors one document of the public wishlist collection
// as served by the document API. Every value is wrapped in a typed field;
// the funded amount arrives as either doubleValue (JSON number) or
// integerValue (decimal string) depending on how it was written upstream.
type WishlistDocument struct {
	Name   string         `json:"name"`
	Fields WishlistFields `json:"fields"`
}

type WishlistFields struct {
	Owner  StringField  `json:"owner"`
	Title  StringField  `json:"title"`
	Funded *NumberField `json:"funded"`
}

type StringField struct {
	StringValue string `json:"stringValue"`
}

type NumberField struct {
	DoubleValue  *float64 `json:"doubleValue,omitempty"`
	IntegerValue *string  `json:"integerValue,omitempty"`
}

func (d *WishlistDocument) Owner() string {
	return d.Fields.Owner.StringValue
}

func (d *WishlistDocument) Title() string {
	return d.Fields.Title.StringValue
}

// FundedValue coerces both wire representations to one decimal type.
// The second return is false when the document carries no usable amount.
func (d *WishlistDocument) FundedValue() (float64, bool) {
	f := d.Fields.Funded
	if f == nil {
		return 0, false
	}
	if f.DoubleValue != nil {
		return *f.DoubleValue, true
	}
	if f.IntegerValue != nil {
		v, err := strconv.ParseFloat(*f.IntegerValue, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
