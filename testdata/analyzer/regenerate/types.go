// Package regenerate already carries its generated file.
package regenerate

//go:tryfrom:derive
type Item struct {
	SKU   string `json:"sku"`
	Count int    `json:"count"`
}
