package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/shopspring/decimal"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// RenderReceiptPDF lays out an A4 receipt for a confirmed order.
func RenderReceiptPDF(order models.Order, site models.SiteConfig) ([]byte, error) {
	if order.OrderNumber == "" {
		return nil, errors.New("order has no order number")
	}

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDER RECEIPT", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(strings.ToUpper(site.Name), props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(site.Contact.Email+"  |  "+site.Contact.Phone, props.Text{Size: 9, Color: mediumGray})
		})
	})

	m.Row(8, func() {})

	ship := order.Shipping
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("DELIVER TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("ORDER DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	leftLines := []string{ship.FullName, ship.Phone, ship.Address, joinNonEmpty(", ", ship.City, ship.County, ship.PostalCode)}
	rightLines := []string{
		"Order #" + order.OrderNumber,
		"Date: " + order.PlacedAt.Format("Jan 02, 2006 15:04"),
		"Payment: " + paymentLabel(order.PaymentMethod),
	}
	if order.PaymentReference != "" {
		rightLines = append(rightLines, "Ref: "+order.PaymentReference)
	}
	for i := 0; i < max(len(leftLines), len(rightLines)); i++ {
		left, right := lineAt(leftLines, i), lineAt(rightLines, i)
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(left, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(6, func() {
				m.Text(right, props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Product", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		for _, heading := range []string{"Qty", "Price", "Total"} {
			m.Col(2, func() {
				m.Text(heading, props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
		}
	})

	for _, item := range order.Items {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(formatKSh(item.UnitPrice), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(formatKSh(item.LineTotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(formatKSh(order.Subtotal), props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for shopping with "+site.Name+"!", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func formatKSh(v float64) string {
	return "KSh " + decimal.NewFromFloat(v).StringFixed(2)
}

func paymentLabel(m models.PaymentMethod) string {
	switch m {
	case models.PaymentMpesa:
		return "M-Pesa"
	case models.PaymentCash:
		return "Cash on delivery"
	}
	return string(m)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
