package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/orders/%d", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
