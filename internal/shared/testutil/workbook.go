package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// LubricantHeader is the header row of a full lubricant-analysis sheet
var LubricantHeader = []interface{}{
	"Navitec", "Cyl", "DateSample", "VesselName", "IMO", "EngineMake", "EngineType", "Owner",
	"BN_", "Iron_", "PQ-Index_", "Chromium", "Nickel", "Vanadium", "FeedRate", "EngineLoad",
	"FOSulphur", "FOCategory", "Catfine", "LOinSample", "Water", "CylinderOil", "BNLevel",
}

// WriteWorkbook saves rows to a single-sheet workbook at path. Nil cells are
// left blank. Missing parent directories are created.
func WriteWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))

	for r, row := range rows {
		for c, val := range row {
			if val == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, f.SaveAs(path))
	return path
}
