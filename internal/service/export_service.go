package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// BuildBatchWorkbook renders a batch calculation result as an .xlsx workbook:
// one summary row per calculation plus a second sheet with every breakdown
// line. Returns the file bytes and a timestamped filename.
func BuildBatchWorkbook(batch *BatchResult) ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"index",
		"product_id",
		"product_name",
		"weight",
		"quantity",
		"unit_cost",
		"total_cost",
		"sale_price_per_unit",
		"total_sale_price",
		"profit_per_unit",
		"total_profit",
		"profit_margin",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("export header: %w", err)
	}

	row := 2
	for _, item := range batch.Results {
		summaryRow := []interface{}{
			item.Index,
			item.Result.Product.ID,
			item.Result.Product.Name,
			item.Result.Product.Weight,
			item.Result.Product.Quantity,
			item.Result.Costs.UnitCost,
			item.Result.Costs.TotalCost,
			item.Result.Costs.SalePricePerUnit,
			item.Result.Costs.TotalSalePrice,
			item.Result.Costs.ProfitPerUnit,
			item.Result.Costs.TotalProfit,
			item.Result.Metadata.ProfitMargin,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("export cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &summaryRow); err != nil {
			return nil, "", fmt.Errorf("export row: %w", err)
		}
		row++
	}

	if err := writeBreakdownSheet(f, batch); err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("export write: %w", err)
	}

	fileName := fmt.Sprintf("calculations_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), fileName, nil
}

func writeBreakdownSheet(f *excelize.File, batch *BatchResult) error {
	const sheet = "Breakdown"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export breakdown sheet: %w", err)
	}

	header := []interface{}{
		"index",
		"product_id",
		"material_id",
		"material_name",
		"description",
		"quantity_used",
		"unit",
		"unit_cost",
		"total_cost",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export breakdown header: %w", err)
	}

	row := 2
	for _, item := range batch.Results {
		for _, line := range item.Result.Breakdown {
			breakdownRow := []interface{}{
				item.Index,
				item.Result.Product.ID,
				line.MaterialID,
				line.MaterialName,
				line.Description,
				line.QuantityUsed,
				line.Unit,
				line.UnitCost,
				line.TotalCost,
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("export breakdown cell: %w", err)
			}
			if err := f.SetSheetRow(sheet, cell, &breakdownRow); err != nil {
				return fmt.Errorf("export breakdown row: %w", err)
			}
			row++
		}
	}
	return nil
}
