package models

// ProductAttributes holds optional structured attributes of a product
type ProductAttributes struct {
	Color    []string `json:"color,omitempty"`
	Size     []string `json:"size,omitempty"`
	Material string   `json:"material,omitempty"`
	Usage    []string `json:"usage,omitempty"`
}

// ProductInfo is the product a batch is generated for.
// Filled from form input or inferred from URL analysis; zero values mean "absent".
type ProductInfo struct {
	ID          string             `json:"id,omitempty"`
	Name        string             `json:"name"`
	URL         string             `json:"url,omitempty"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	Price       float64            `json:"price,omitempty"`
	Images      []string           `json:"images,omitempty"`
	Attributes  *ProductAttributes `json:"attributes,omitempty"`
}

// Merge returns a copy of p where every non-zero field of inferred overrides p.
// Neither p nor inferred is modified.
func (p ProductInfo) Merge(inferred ProductInfo) ProductInfo {
	out := p
	if inferred.ID != "" {
		out.ID = inferred.ID
	}
	if inferred.Name != "" {
		out.Name = inferred.Name
	}
	if inferred.URL != "" {
		out.URL = inferred.URL
	}
	if inferred.Description != "" {
		out.Description = inferred.Description
	}
	if inferred.Category != "" {
		out.Category = inferred.Category
	}
	if inferred.Price != 0 {
		out.Price = inferred.Price
	}
	if len(inferred.Images) > 0 {
		out.Images = append([]string(nil), inferred.Images...)
	}
	if inferred.Attributes != nil {
		attrs := *inferred.Attributes
		out.Attributes = &attrs
	}
	return out
}

// Material returns the material attribute or "".
func (p ProductInfo) Material() string {
	if p.Attributes == nil {
		return ""
	}
	return p.Attributes.Material
}

// Colors returns the color attribute or nil.
func (p ProductInfo) Colors() []string {
	if p.Attributes == nil {
		return nil
	}
	return p.Attributes.Color
}

// FirstImage returns the first product image or "".
func (p ProductInfo) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
