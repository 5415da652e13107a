package constants

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Guest booking status
const (
	GuestStatusReserved   = "reserved"
	GuestStatusCheckedIn  = "checked_in"
	GuestStatusCheckedOut = "checked_out"
	GuestStatusCancelled  = "cancelled"
)

// Purchase category
const (
	PurchaseCategoryRestaurant = "restaurant"
	PurchaseCategoryBar        = "bar"
	PurchaseCategoryLaundry    = "laundry"
	PurchaseCategoryOther      = "other"
)
