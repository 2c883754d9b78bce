package conf

// InitialCapacity - Number of buckets in a new or cleared hash map
const InitialCapacity int = 1

// GrowthFactor - Factor the number of buckets is multiplied with when the load factor trigger fires
const GrowthFactor int = 2

// PageSize - Number of record slots in each arena page. Pages are never reallocated once created,
// which is what keeps pointers into records stable.
const PageSize int = 64

// NoSlot - Slot number used as a nil link in the ordered record list
const NoSlot int = -1
