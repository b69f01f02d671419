package metadata

import "encoding/json"

type AssetCategory string

const (
	CategoryLaptop        AssetCategory = "LAPTOP"
	CategoryDesktop       AssetCategory = "DESKTOP"
	CategoryMonitor       AssetCategory = "MONITOR"
	CategoryPhone         AssetCategory = "PHONE"
	CategoryTablet        AssetCategory = "TABLET"
	CategoryKeyboard      AssetCategory = "KEYBOARD"
	CategoryMouse         AssetCategory = "MOUSE"
	CategoryPrinter       AssetCategory = "PRINTER"
	CategoryServer        AssetCategory = "SERVER"
	CategoryNetworkDevice AssetCategory = "NETWORK_DEVICE"
	CategoryOther         AssetCategory = "OTHER"
)

var categories = []enumValue[AssetCategory]{
	{CategoryLaptop, "Laptop", "Laptop"},
	{CategoryDesktop, "Desktop", "Desktop"},
	{CategoryMonitor, "Monitor", "Monitor"},
	{CategoryPhone, "Phone", "Phone"},
	{CategoryTablet, "Tablet", "Tablet"},
	{CategoryKeyboard, "Keyboard", "Keyboard"},
	{CategoryMouse, "Mouse", "Mouse"},
	{CategoryPrinter, "Printer", "Printer"},
	{CategoryServer, "Server", "Server"},
	{CategoryNetworkDevice, "NetworkDevice", "Network Device"},
	{CategoryOther, "Other", "Other"},
}

func AssetCategories() []AssetCategory {
	return codes(categories)
}

func NewAssetCategory(value string) (AssetCategory, error) {
	return parse("category", value, categories)
}

func (c AssetCategory) IsValid() bool {
	_, ok := lookup(c, categories)
	return ok
}

func (c AssetCategory) DisplayName() string {
	if v, ok := lookup(c, categories); ok {
		return v.display
	}
	return string(c)
}

func (c AssetCategory) String() string {
	return c.DisplayName()
}

func (c AssetCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.DisplayName())
}

func (c *AssetCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &InvalidValueError{Field: "category", Value: string(data), Valid: displayNames(categories)}
	}

	category, err := NewAssetCategory(raw)
	if err != nil {
		return err
	}
	*c = category
	return nil
}
