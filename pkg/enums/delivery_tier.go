package enums

// DeliveryTier represents one of the fixed delivery pricing tiers.
type DeliveryTier string

const (
	// DeliveryTierStandard is the default delivery tier.
	DeliveryTierStandard DeliveryTier = "standard"
	// DeliveryTierExpress is the fast, higher-fee tier.
	DeliveryTierExpress DeliveryTier = "express"
	// DeliveryTierFree is the no-fee, slow tier.
	DeliveryTierFree DeliveryTier = "free"
)

// IsValid reports whether the tier is one of the known tiers.
func (t DeliveryTier) IsValid() bool {
	switch t {
	case DeliveryTierStandard, DeliveryTierExpress, DeliveryTierFree:
		return true
	}
	return false
}
