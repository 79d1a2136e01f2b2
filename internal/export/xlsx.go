// Package export writes the contact collection to other file formats.
package export

import (
	"fmt"
	"io"

	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the exported contacts.
const SheetName = "Contacts"

var header = []any{"Name", "Phone", "Email", "Address", "ID"}

// WriteXLSX writes cs to w as a single-sheet workbook with a header row.
func WriteXLSX(w io.Writer, cs []contacts.Contact) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, c := range cs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{c.Name, c.PhoneNumber, c.Email, c.Address, c.ID.String()}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write contact %s: %w", c.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
