package prefix

import "fmt"

func capacityDetail(dimension, payloadBits int) error {
	return fmt.Errorf("%d payload bits, %d available after a %d-bit prefix",
		payloadBits, max(dimension-Length(dimension), 0), Length(dimension))
}

func headerDetail(h Header, dimension int) error {
	return fmt.Errorf("header value %d outside [%d, %d]", h.Value, h.Length, dimension)
}
