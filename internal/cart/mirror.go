package cart

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// itemRecord is the persisted form of one mirrored cart line.
type itemRecord struct {
	ID            uint   `gorm:"primaryKey"`
	SessionID     string `gorm:"index:idx_cart_mirror_session"`
	CartItemID    string
	MenuItemID    string
	Name          string
	CategoryName  string
	Description   string
	Price         float64
	OriginalPrice float64
	LineSubtotal  float64
	Quantity      int
	InStock       bool
	StockQuantity int
	ImagesJSON    string
	UpdatedAt     time.Time
}

func (itemRecord) TableName() string {
	return "cart_mirror_items"
}

// Mirror keeps a per-session snapshot of the upstream cart. It is a read
// fallback only; the storefront API stays the source of truth.
type Mirror struct {
	db *gorm.DB
}

// NewMirror constructs the mirror store bound to the provided gorm DB.
func NewMirror(db *gorm.DB) *Mirror {
	return &Mirror{db: db}
}

// Migrate creates the mirror table when it does not exist yet.
func (m *Mirror) Migrate() error {
	return m.db.AutoMigrate(&itemRecord{})
}

// Replace swaps the session's snapshot for the given items atomically.
func (m *Mirror) Replace(ctx context.Context, sessionID string, items []Item) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&itemRecord{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		records := make([]itemRecord, 0, len(items))
		for _, item := range items {
			record, err := toRecord(sessionID, item)
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return tx.Create(&records).Error
	})
}

// Snapshot returns the session's last mirrored cart.
func (m *Mirror) Snapshot(ctx context.Context, sessionID string) ([]Item, error) {
	var records []itemRecord
	if err := m.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(records))
	for _, record := range records {
		item, err := record.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear drops the session's snapshot.
func (m *Mirror) Clear(ctx context.Context, sessionID string) error {
	return m.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&itemRecord{}).Error
}

func toRecord(sessionID string, item Item) (itemRecord, error) {
	images, err := json.Marshal(item.Images)
	if err != nil {
		return itemRecord{}, err
	}
	return itemRecord{
		SessionID:     sessionID,
		CartItemID:    item.CartID,
		MenuItemID:    item.MenuItemID,
		Name:          item.Name,
		CategoryName:  item.CategoryName,
		Description:   item.Description,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		LineSubtotal:  item.LineSubtotal,
		Quantity:      item.Quantity,
		InStock:       item.InStock,
		StockQuantity: item.StockQuantity,
		ImagesJSON:    string(images),
		UpdatedAt:     time.Now().UTC(),
	}, nil
}

func (r itemRecord) toItem() (Item, error) {
	var images []ItemImage
	if r.ImagesJSON != "" {
		if err := json.Unmarshal([]byte(r.ImagesJSON), &images); err != nil {
			return Item{}, err
		}
	}
	return Item{
		CartID:        r.CartItemID,
		MenuItemID:    r.MenuItemID,
		CategoryName:  r.CategoryName,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		LineSubtotal:  r.LineSubtotal,
		Quantity:      r.Quantity,
		InStock:       r.InStock,
		StockQuantity: r.StockQuantity,
		Images:        images,
	}, nil
}
