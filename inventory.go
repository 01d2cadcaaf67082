package warehouse

// Category is a processed (packaged) stock bucket.
type Category string

const (
	Small      Category = "small"
	Medium     Category = "medium"
	Large      Category = "large"
	ExtraLarge Category = "extra-large"
	FamilyPack Category = "family-pack"
	BulkPack   Category = "bulk-pack"
	Premium    Category = "premium"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{Small, Medium, Large, ExtraLarge, FamilyPack, BulkPack, Premium}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Small, Medium, Large, ExtraLarge, FamilyPack, BulkPack, Premium:
		return Category(s), nil
	default:
		return "", &NotFoundError{Kind: "category", ID: s}
	}
}

func (c Category) String() string { return string(c) }

// defaultPackageSizes are the fixed grams per package of each category.
// Premium has no default; its size must be set explicitly before any premium
// conversion.
func defaultPackageSizes() map[Category]Grams {
	return map[Category]Grams{
		Small:      100,
		Medium:     250,
		Large:      500,
		ExtraLarge: 1000,
		FamilyPack: 2000,
		BulkPack:   5000,
		Premium:    0,
	}
}

// defaultMinimumStock are the low-stock display thresholds per category.
func defaultMinimumStock() map[Category]int {
	return map[Category]int{
		Small:      50,
		Medium:     30,
		Large:      20,
		ExtraLarge: 15,
		FamilyPack: 10,
		BulkPack:   5,
		Premium:    10,
	}
}

// Inventory is the two-stage stock ledger: unprocessed raw mass by product
// type, and processed packaged stock by category. No operation may drive a
// balance negative; short conversions and debits are rejected, never clamped.
type Inventory struct {
	unprocessed  map[ProductType]Grams
	processed    map[Category]int
	packageSizes map[Category]Grams
	minimumStock map[Category]int
}

// NewInventory creates an empty inventory with the default package sizes and
// minimum stock thresholds.
func NewInventory() *Inventory {
	inv := &Inventory{
		unprocessed:  make(map[ProductType]Grams),
		processed:    make(map[Category]int),
		packageSizes: defaultPackageSizes(),
		minimumStock: defaultMinimumStock(),
	}
	for _, t := range ProductTypes() {
		inv.unprocessed[t] = 0
	}
	for _, c := range Categories() {
		inv.processed[c] = 0
	}
	return inv
}

// AddUnprocessed credits raw mass to the given product type pool.
func (inv *Inventory) AddUnprocessed(t ProductType, g Grams) error {
	if _, ok := inv.unprocessed[t]; !ok {
		return &NotFoundError{Kind: "product type", ID: string(t)}
	}
	inv.unprocessed[t] += g
	return nil
}

// removeUnprocessed debits raw mass from the given product type pool. The
// debit is rejected when it would drive the pool negative.
func (inv *Inventory) removeUnprocessed(t ProductType, g Grams) error {
	available, ok := inv.unprocessed[t]
	if !ok {
		return &NotFoundError{Kind: "product type", ID: string(t)}
	}
	if available < g {
		return &InsufficientStockError{Pool: string(t), Available: int64(available), Required: int64(g), Unit: "g"}
	}
	inv.unprocessed[t] = available - g
	return nil
}

// ProcessToCategory converts raw mass into packaged stock. This is the single
// unit-conversion chokepoint: raw grams become discrete packages here and
// only here. It fails when the source type or category is unknown, when the
// category's package size is unset (premium before SetPackageSize), or when
// the source pool holds less than packageSize x quantity grams.
func (inv *Inventory) ProcessToCategory(source ProductType, category Category, quantity int) error {
	if _, ok := inv.unprocessed[source]; !ok {
		return &NotFoundError{Kind: "product type", ID: string(source)}
	}
	size, ok := inv.packageSizes[category]
	if !ok {
		return &NotFoundError{Kind: "category", ID: string(category)}
	}
	if err := validateOrderQuantity(quantity); err != nil {
		return err
	}
	if size <= 0 {
		// The category cannot produce packages until its size is configured.
		return &InsufficientStockError{Pool: string(category), Available: 0, Required: int64(quantity), Unit: " packages"}
	}
	required := size * Grams(quantity)
	if err := inv.removeUnprocessed(source, required); err != nil {
		return err
	}
	inv.processed[category] += quantity
	return nil
}

// SetPackageSize changes the grams per package of a category. This is the
// only way to configure the premium package size; processing never mutates
// configuration as a side effect.
func (inv *Inventory) SetPackageSize(category Category, size Grams) error {
	if _, ok := inv.packageSizes[category]; !ok {
		return &NotFoundError{Kind: "category", ID: string(category)}
	}
	if category != Premium {
		return &ValidationError{Field: "category", Reason: "only the premium package size is configurable"}
	}
	if size <= 0 {
		return &ValidationError{Field: "package size", Reason: "must be greater than 0"}
	}
	inv.packageSizes[category] = size
	return nil
}

// reserve debits packaged stock for an order. Rejected when short.
func (inv *Inventory) reserve(category Category, quantity int) error {
	available, ok := inv.processed[category]
	if !ok {
		return &NotFoundError{Kind: "category", ID: string(category)}
	}
	if available < quantity {
		return &InsufficientStockError{Pool: string(category), Available: int64(available), Required: int64(quantity), Unit: " packages"}
	}
	inv.processed[category] = available - quantity
	return nil
}

// release returns previously reserved packaged stock to the ledger.
func (inv *Inventory) release(category Category, quantity int) {
	inv.processed[category] += quantity
}

// UnprocessedGrams returns the raw mass balance of a product type.
func (inv *Inventory) UnprocessedGrams(t ProductType) Grams { return inv.unprocessed[t] }

// Processed returns the package count balance of a category.
func (inv *Inventory) Processed(c Category) int { return inv.processed[c] }

// PackageSize returns the grams per package of a category (0 when unset).
func (inv *Inventory) PackageSize(c Category) Grams { return inv.packageSizes[c] }

// MinimumStock returns the low-stock threshold of a category.
func (inv *Inventory) MinimumStock(c Category) int { return inv.minimumStock[c] }

// AvailableTypes returns the product types with a positive raw balance.
func (inv *Inventory) AvailableTypes() []ProductType {
	var types []ProductType
	for _, t := range ProductTypes() {
		if inv.unprocessed[t] > 0 {
			types = append(types, t)
		}
	}
	return types
}
