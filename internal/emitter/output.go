package emitter

// Output represents the operations a host needs to patch displayed text:
// erase the last count characters and type new text. It is satisfied by
// Terminal and Text and lets tests substitute lightweight fakes.
type Output interface {
	Close() error
	SendBackspace(count int) error
	SendText(text string) error
}

var (
	_ Output = (*Terminal)(nil)
	_ Output = (*Text)(nil)
)
