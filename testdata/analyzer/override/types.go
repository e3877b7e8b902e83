// Package override keeps its generated file under a custom name.
package override

//go:tryfrom:derive
type Item struct {
	SKU   string `json:"sku"`
	Count int    `json:"count"`
}
