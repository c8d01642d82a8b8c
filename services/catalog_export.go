package services

import (
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

var catalogHeaders = []string{
	"ID", "Name", "Description", "Price", "Sizes", "Colors", "ImageURL", "StockQty", "Category",
}

// BuildCatalogWorkbook lays products out one per row under a header row.
func BuildCatalogWorkbook(products []entity.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range catalogHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetString(strings.Join(p.Sizes, ","))
		row.AddCell().SetString(strings.Join(p.Colors, ","))
		row.AddCell().SetString(p.ImageURL)
		row.AddCell().SetInt(p.StockQty)
		row.AddCell().SetString(p.Category)
	}
	return file, nil
}
