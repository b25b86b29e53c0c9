// Package patch supports partial updates where a nil request field means
// "leave the current value alone".
package patch

func Coalesce[T any](p *T, current T) T {
	if p != nil {
		return *p
	}
	return current
}
