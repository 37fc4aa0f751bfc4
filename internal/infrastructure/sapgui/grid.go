package sapgui

import (
	"context"
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"sap-agent/internal/domain/entity"
)

// Well-known GuiGridView container paths used by ALV result screens
// (SE16H, FBL1N and friends). Tried in order under the given container.
var gridPaths = []string{
	"%s/cntlRESULT_LIST/shellcont/shell",
	"%s/cntlCONTAINER/shellcont/shell",
	"%s/cntlGRID1/shellcont/shell",
	"%s/cntlGRID/shellcont/shell",
	"%s/cntlALV_CONTAINER/shellcont/shell",
}

func (a *Adapter) ReadGrid(ctx context.Context, containerID string, maxRows int) (*entity.GridData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid, err := a.findGrid(containerID)
	if err != nil {
		return nil, err
	}
	defer grid.Release()

	totalRows, err := intProperty(grid, "RowCount")
	if err != nil {
		return nil, fmt.Errorf("read grid row count: %w", err)
	}

	columns, err := gridColumns(grid)
	if err != nil {
		return nil, err
	}

	rows := totalRows
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}

	data := &entity.GridData{Columns: columns, TotalRows: totalRows}
	for row := 0; row < rows; row++ {
		record := make(map[string]string, len(columns))
		for _, col := range columns {
			v, err := oleutil.CallMethod(grid, "GetCellValue", row, col)
			if err != nil {
				record[col] = ""
				continue
			}
			record[col] = v.ToString()
			v.Clear()
		}
		data.Rows = append(data.Rows, record)
	}

	a.logger.Debug("Grid read", "rows", len(data.Rows), "totalRows", totalRows, "columns", len(columns))
	return data, nil
}

func (a *Adapter) findGrid(containerID string) (*ole.IDispatch, error) {
	for _, pattern := range gridPaths {
		id := fmt.Sprintf(pattern, containerID)
		if grid, err := a.findByID(id); err == nil {
			return grid, nil
		}
	}
	return nil, fmt.Errorf("no result grid found under %s", containerID)
}

// gridColumns reads GuiGridView.ColumnOrder, the column ids in display
// order.
func gridColumns(grid *ole.IDispatch) ([]string, error) {
	order, err := dispProperty(grid, "ColumnOrder")
	if err != nil {
		return nil, fmt.Errorf("read grid column order: %w", err)
	}
	defer order.Release()

	count, err := collectionCount(order)
	if err != nil {
		return nil, fmt.Errorf("read grid column count: %w", err)
	}

	columns := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, err := elementAt(order, i)
		if err != nil {
			return nil, fmt.Errorf("read grid column %d: %w", i, err)
		}
		columns = append(columns, v.ToString())
		v.Clear()
	}
	return columns, nil
}
