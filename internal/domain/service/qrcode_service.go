package service

// QRCodeService renders card codes as scannable images.
type QRCodeService interface {
	// RenderCardCode returns a PNG encoding the given card code.
	RenderCardCode(code string) ([]byte, error)
}
