package warehouse

import (
	"errors"
	"time"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var (
	// ErrBusinessUnitCodeIsRequired is returned when attempting to create a
	// warehouse without a business unit code.
	ErrBusinessUnitCodeIsRequired = errs.NewValueIsRequiredError("businessUnitCode")
	// ErrLocationIsRequired is returned when attempting to create a warehouse
	// without a location identifier.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrWarehouseIsNotConstructed is returned when using an improperly
	// initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
)

// Warehouse is the aggregate root of the fulfilment warehouse lifecycle.
//
// Identity is the business unit code: it is assigned once and survives any
// number of replacements, which lets cost and audit records that reference
// the code stay continuous while the physical facility behind it changes.
//
// Lifecycle: created (active) -> replaced any number of times (still active,
// new generation) -> archived (terminal). Archived warehouses accept no
// further mutation; the only conceptual way forward for their code is a fresh
// creation, which the lifecycle engine currently also blocks via its general
// uniqueness rule.
//
// Stock is optional: nil means the stock level was never reported. The rules
// that compare stock treat nil as zero exactly where the lifecycle demands it
// (replacement stock continuity) and nowhere else.
type Warehouse struct {
	businessUnitCode string
	location         string
	capacity         int
	stock            *int
	createdAt        time.Time
	archivedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewWarehouse creates a new active warehouse. The creation timestamp marks
// the start of the first generation.
//
// Field rules enforced here:
//   - business unit code and location are required
//   - capacity must be greater than zero
//   - stock, when present, must be within [0, capacity]
func NewWarehouse(businessUnitCode, location string, capacity int, stock *int, createdAt time.Time) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setBusinessUnitCode(businessUnitCode),
		w.setLocation(location),
		w.setCapacityAndStock(capacity, stock),
	); err != nil {
		return nil, err
	}

	w.createdAt = createdAt
	return w, nil
}

// RestoreWarehouse reconstructs a warehouse aggregate from persistent
// storage, including its archival state. The restored aggregate behaves
// identically to one created through normal domain operations.
func RestoreWarehouse(
	businessUnitCode, location string,
	capacity int,
	stock *int,
	createdAt time.Time,
	archivedAt *time.Time,
) (*Warehouse, error) {
	w, err := NewWarehouse(businessUnitCode, location, capacity, stock, createdAt)
	if err != nil {
		return nil, err
	}

	w.archivedAt = archivedAt
	return w, nil
}

// Validate checks that the Warehouse was constructed via NewWarehouse or
// RestoreWarehouse. The zero value is invalid.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by their business unit code.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	if other == nil {
		return false
	}
	return w.businessUnitCode == other.businessUnitCode
}

// BusinessUnitCode returns the stable external identifier of the warehouse.
func (w *Warehouse) BusinessUnitCode() string {
	return w.businessUnitCode
}

// Location returns the identifier of the location the warehouse is placed in.
func (w *Warehouse) Location() string {
	return w.location
}

// Capacity returns the upper bound on stock the warehouse can hold.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// Stock returns the reported stock level, or nil when it was never reported.
// The returned pointer is a copy; mutating it does not affect the aggregate.
func (w *Warehouse) Stock() *int {
	if w.stock == nil {
		return nil
	}
	s := *w.stock
	return &s
}

// StockOrZero returns the reported stock level, treating an unreported level
// as zero. This is the reading the replacement continuity rules use.
func (w *Warehouse) StockOrZero() int {
	if w.stock == nil {
		return 0
	}
	return *w.stock
}

// CreatedAt returns the start of the current generation: the original
// creation time, or the time of the latest replacement.
func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

// ArchivedAt returns the archival timestamp, or nil while the warehouse is
// active.
func (w *Warehouse) ArchivedAt() *time.Time {
	if w.archivedAt == nil {
		return nil
	}
	at := *w.archivedAt
	return &at
}

// IsArchived reports whether the warehouse has been archived.
func (w *Warehouse) IsArchived() bool {
	return w.archivedAt != nil
}

// ReplaceWith swaps the physical facility behind the business unit code.
//
// The code is preserved; location, capacity and stock take the candidate's
// values; the creation timestamp is reset to mark the new generation; the
// warehouse is forced active.
//
// Rules enforced, in order:
//   - the warehouse must not be archived
//   - capacity must be greater than zero
//   - capacity must accommodate the stock carried over from this warehouse
//   - the candidate stock (nil treated as 0) must equal the current stock
//     (nil treated as 0) -- replacement migrates stock, it never changes it
func (w *Warehouse) ReplaceWith(location string, capacity int, stock *int, at time.Time) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if w.IsArchived() {
		return NewCannotReplaceArchivedError(w.businessUnitCode)
	}

	if capacity <= 0 {
		return NewCapacityRequiredError()
	}

	oldStock := w.StockOrZero()
	if capacity < oldStock {
		return NewCapacityCannotAccommodateStockError(capacity, oldStock)
	}

	newStock := 0
	if stock != nil {
		newStock = *stock
	}
	if newStock != oldStock {
		return NewStockMismatchError(newStock, oldStock)
	}

	if err := w.setLocation(location); err != nil {
		return err
	}

	w.capacity = capacity
	w.stock = copyStock(stock)
	w.createdAt = at
	w.archivedAt = nil
	return nil
}

// Archive marks the warehouse as terminally out of service. No other field
// changes. Archiving an archived warehouse fails.
func (w *Warehouse) Archive(at time.Time) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if w.IsArchived() {
		return NewAlreadyArchivedError(w.businessUnitCode)
	}

	w.archivedAt = &at
	return nil
}

func (w *Warehouse) setBusinessUnitCode(businessUnitCode string) error {
	if businessUnitCode == "" {
		return ErrBusinessUnitCodeIsRequired
	}

	w.businessUnitCode = businessUnitCode
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	w.location = location
	return nil
}

func (w *Warehouse) setCapacityAndStock(capacity int, stock *int) error {
	if capacity <= 0 {
		return NewCapacityRequiredError()
	}

	if stock != nil {
		if *stock < 0 {
			return errs.NewValueIsOutOfRangeError("stock", *stock, 0, capacity)
		}
		if *stock > capacity {
			return NewStockExceedsCapacityError(*stock, capacity)
		}
	}

	w.capacity = capacity
	w.stock = copyStock(stock)
	return nil
}

func copyStock(stock *int) *int {
	if stock == nil {
		return nil
	}
	s := *stock
	return &s
}
