package atomic

type nocmp [0]func()

func unpack[T any](p *T) (val T) {
	if p == nil {
		return val
	}
	return *p
}
