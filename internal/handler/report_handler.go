package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"cjpowerhouse-backend/internal/repository"
)

type ReportHandler struct {
	orderRepo repository.OrderRepository
}

func NewReportHandler(orderRepo repository.OrderRepository) *ReportHandler {
	return &ReportHandler{orderRepo: orderRepo}
}

// ExportSales streams the detailed sales report for a date range as an XLSX
// attachment: one row per order item, then a summary block counting each
// order once.
func (h *ReportHandler) ExportSales(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
	}

	rows, err := h.orderRepo.SalesRows(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sales data"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "D", 20)
	f.SetColWidth(sheet, "E", "G", 16)
	f.SetColWidth(sheet, "H", "I", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#EFEFEF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Order ID", "Transaction #", "Date", "Customer", "Payment", "Product", "Category", "Quantity", "Unit Price"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	// Summary totals count each order once even though it spans item rows.
	seen := map[uint]bool{}
	txCount := 0
	var sumSubtotal, sumDelivery, sumTotal float64

	rowNum := 2
	for _, r := range rows {
		if !seen[r.OrderID] {
			seen[r.OrderID] = true
			txCount++
			sumSubtotal += r.TotalPrice
			sumDelivery += r.DeliveryFee
			sumTotal += r.TotalWithDelivery
		}

		values := []interface{}{
			r.OrderID,
			r.TransactionNumber,
			r.OrderDate.Format("2006/01/02 03:04 PM"),
			r.FirstName + " " + r.LastName,
			r.PaymentMethod,
			r.ProductName,
			r.Category,
			r.Quantity,
			r.UnitPrice,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
		rowNum++
	}

	rowNum++
	summary := [][2]interface{}{
		{"Transactions", txCount},
		{"Subtotal", sumSubtotal},
		{"Delivery Fees", sumDelivery},
		{"Total", sumTotal},
	}
	for _, s := range summary {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), s[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), s[1])
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write report"})
	}

	filename := fmt.Sprintf("sales_report_detailed_%s_to_%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}
