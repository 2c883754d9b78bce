package listhashmap

// KeyNotFound - Custom error to inform that a lookup asked for a key that is not in the hash map
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no element with the key was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "there is no element with this key in hash map"
	}
	return E.msg
}

// Is - Makes errors.Is(err, KeyNotFound{}) match any KeyNotFound regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// InvalidIterator - Custom error used as panic value when an iterator that does not point at a live element
// is dereferenced or advanced
type InvalidIterator struct {
	msg string
}

// Error - Used to notify that an iterator is invalid
func (E InvalidIterator) Error() string {
	if E.msg == "" {
		return "iterator does not point at an element"
	}
	return E.msg
}
