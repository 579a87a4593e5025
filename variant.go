package anycow

// Variant selects how a Cow stores its value. It is fixed when the
// container is constructed.
type Variant uint8

const (
	Borrowed Variant = iota
	Owned
	Shared
	Updatable
	Lazy
)

func (v Variant) String() string {
	switch v {
	case Borrowed:
		return "Borrowed"
	case Owned:
		return "Owned"
	case Shared:
		return "Shared"
	case Updatable:
		return "Updatable"
	case Lazy:
		return "Lazy"
	default:
		return "Unknown"
	}
}
