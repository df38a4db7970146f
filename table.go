package layout

// table.go implements CSS2.1 ยง17 table layout: anonymous box generation
// for stray table-cells/rows, automatic column/row sizing from cell
// content, and border-collapse/border-spacing gap resolution. Grounded on
// the table layout pass in the retrieval pack's reference browser engine
// (buildTableInfo/processTableRows/calculateColumnWidths/
// calculateRowHeights/positionTableCells), adapted from that engine's
// separate html.Node/css.Style/Box types onto this package's single Node/
// Style tree and its float64-sentinel layout model.

// TableLayoutInfo is the resolved geometry of a table box, stashed on
// Node.TableLayout so arena.go can snapshot it into a ViewTable without
// recomputing anything.
type TableLayoutInfo struct {
	NumCols        int
	ColumnWidths   []float64
	RowHeights     []float64
	BorderSpacing  float64
	BorderCollapse BorderCollapse
}

// tableCell is one entry in the row/column grid built while scanning a
// table's children. Every grid slot a cell's rowspan/colspan covers holds
// that same cell; nil entries are columns no cell fills.
type tableCell struct {
	node             *Node
	rowSpan, colSpan int
	rowIdx, colIdx   int
}

func spanOrOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// isTableRow reports whether n is a table-row box (display: table-row).
func isTableRow(n *Node) bool {
	return n.Style.Display == DisplayTableRow
}

// isTableRowGroup reports whether n groups rows (tbody/thead/tfoot,
// display: table-row-group).
func isTableRowGroup(n *Node) bool {
	return n.Style.Display == DisplayTableRowGroup
}

// isTableCell reports whether n is a table-cell box (display: table-cell).
func isTableCell(n *Node) bool {
	return n.Style.Display == DisplayTableCell
}

// buildCellGrid walks a table box's children, generating the anonymous
// rows CSS2.1 ยง17.2.1 requires around stray table-cells and non-table
// children, and returns the resulting row-major grid of cells (a spanning
// cell fills every slot it covers; nil entries are unfilled columns).
func buildCellGrid(table *Node) [][]*tableCell {
	grid := make([][]*tableCell, 0)
	rowIdx := 0

	ensureRow := func(idx int) {
		for len(grid) <= idx {
			grid = append(grid, make([]*tableCell, 0))
		}
	}

	placeCell := func(cell *tableCell) {
		for r := 0; r < cell.rowSpan; r++ {
			ensureRow(cell.rowIdx + r)
			row := grid[cell.rowIdx+r]
			for len(row) <= cell.colIdx+cell.colSpan-1 {
				row = append(row, nil)
			}
			for c := 0; c < cell.colSpan; c++ {
				row[cell.colIdx+c] = cell
			}
			grid[cell.rowIdx+r] = row
		}
	}

	var processRow func(row *Node)
	processRow = func(row *Node) {
		ensureRow(rowIdx)
		colIdx := 0
		for _, child := range row.Children {
			if !isTableCell(child) {
				continue
			}
			for colIdx < len(grid[rowIdx]) && grid[rowIdx][colIdx] != nil {
				colIdx++
			}
			cell := &tableCell{
				node:    child,
				rowSpan: spanOrOne(child.Style.RowSpan),
				colSpan: spanOrOne(child.Style.ColSpan),
				rowIdx:  rowIdx,
				colIdx:  colIdx,
			}
			placeCell(cell)
			colIdx += cell.colSpan
		}
		rowIdx++
	}

	var anonRow *Node
	flushAnon := func(child *Node) *Node {
		if anonRow == nil {
			anonRow = &Node{Style: Style{Display: DisplayTableRow}}
		}
		anonRow.Children = append(anonRow.Children, child)
		return anonRow
	}

	pendingAnon := false
	for _, child := range table.Children {
		switch {
		case isTableRow(child):
			if pendingAnon {
				processRow(anonRow)
				anonRow = nil
				pendingAnon = false
			}
			processRow(child)
		case isTableRowGroup(child):
			if pendingAnon {
				processRow(anonRow)
				anonRow = nil
				pendingAnon = false
			}
			for _, groupChild := range child.Children {
				if isTableRow(groupChild) {
					processRow(groupChild)
				}
			}
		case isTableCell(child):
			flushAnon(child)
			pendingAnon = true
		default:
			// Non-table content inside a table box is wrapped in an
			// anonymous cell within the anonymous row (CSS2.1 ยง17.2.1).
			anonCell := &Node{Style: Style{Display: DisplayTableCell}, Children: []*Node{child}}
			flushAnon(anonCell)
			pendingAnon = true
		}
	}
	if pendingAnon {
		processRow(anonRow)
	}

	return grid
}

// measureCellContentWidth estimates a cell's shrink-to-fit content width
// from the text of its direct children plus its own padding/border.
func measureCellContentWidth(cell *Node) float64 {
	if cell == nil {
		return 0
	}
	total := 0.0
	fontSize := 16.0
	if cell.Style.TextStyle != nil && cell.Style.TextStyle.FontSize > 0 {
		fontSize = cell.Style.TextStyle.FontSize
	}
	for _, child := range cell.Children {
		if child.Text != "" {
			total += measureCharWidth(' ', fontSize, nil) * float64(len([]rune(child.Text)))
		}
	}
	total += cell.Style.Padding.Left + cell.Style.Padding.Right
	total += cell.Style.Border.Left + cell.Style.Border.Right
	return total
}

// calculateColumnWidths distributes availableWidth across columns: cells
// with an explicit width win that width, the rest share what's left in
// proportion to measured content width (or evenly, with no content
// measured). tableWidth == 0 signals a shrink-to-fit table, which uses
// content widths directly instead of stretching to fill availableWidth.
func calculateColumnWidths(grid [][]*tableCell, numCols int, availableWidth, tableWidth, borderSpacing float64, collapse BorderCollapse) []float64 {
	if numCols == 0 {
		return nil
	}

	totalSpacing := 0.0
	if collapse == BorderCollapseSeparate {
		totalSpacing = borderSpacing * float64(numCols+1)
	}

	widths := make([]float64, numCols)
	explicit := make([]bool, numCols)
	contentWidths := make([]float64, numCols)

	for _, row := range grid {
		for colIdx, cell := range row {
			if cell == nil || colIdx >= numCols || cell.colIdx != colIdx {
				continue
			}
			if cell.node.Style.Width > 0 {
				if cell.node.Style.Width > widths[colIdx] {
					widths[colIdx] = cell.node.Style.Width
					explicit[colIdx] = true
				}
			}
			if !explicit[colIdx] {
				if cw := measureCellContentWidth(cell.node); cw > contentWidths[colIdx] {
					contentWidths[colIdx] = cw
				}
			}
		}
	}

	usedWidth := totalSpacing
	unsetCols := 0
	totalContentWidth := 0.0
	for i := 0; i < numCols; i++ {
		usedWidth += widths[i]
		if !explicit[i] {
			unsetCols++
			totalContentWidth += contentWidths[i]
		}
	}
	if unsetCols == 0 {
		return widths
	}

	remaining := availableWidth - usedWidth
	switch {
	case remaining <= 0:
		for i := 0; i < numCols; i++ {
			if !explicit[i] {
				widths[i] = 10
			}
		}
	case tableWidth == 0 && totalContentWidth > 0:
		for i := 0; i < numCols; i++ {
			if !explicit[i] {
				widths[i] = contentWidths[i]
			}
		}
	case totalContentWidth > 0 && totalContentWidth <= remaining:
		extra := remaining - totalContentWidth
		for i := 0; i < numCols; i++ {
			if !explicit[i] {
				widths[i] = contentWidths[i] + extra*contentWidths[i]/totalContentWidth
			}
		}
	case totalContentWidth > remaining:
		for i := 0; i < numCols; i++ {
			if !explicit[i] {
				widths[i] = remaining * contentWidths[i] / totalContentWidth
			}
		}
	default:
		per := remaining / float64(unsetCols)
		for i := 0; i < numCols; i++ {
			if !explicit[i] {
				widths[i] = per
			}
		}
	}
	return widths
}

// calculateRowHeights lays out each cell's content against its column
// width and returns the max resulting height per row, accounting for
// rowspan by only attributing height to a cell's first row.
func calculateRowHeights(grid [][]*tableCell, columnWidths []float64) []float64 {
	heights := make([]float64, len(grid))
	for rowIdx, row := range grid {
		maxHeight := 0.0
		for colIdx, cell := range row {
			if cell == nil || cell.rowIdx != rowIdx {
				continue
			}
			cellWidth := 0.0
			for c := 0; c < cell.colSpan && colIdx+c < len(columnWidths); c++ {
				cellWidth += columnWidths[colIdx+c]
			}
			size := LayoutBlock(cell.node, Loose(cellWidth, Unbounded))
			if size.Height > maxHeight {
				maxHeight = size.Height
			}
		}
		heights[rowIdx] = maxHeight
	}
	return heights
}

// positionTableCells places every cell's Rect from the resolved column
// widths/row heights and border-spacing gaps, and lays out each cell's
// children against the final cell box.
func positionTableCells(table *Node, grid [][]*tableCell, columnWidths, rowHeights []float64, borderSpacing float64, collapse BorderCollapse) float64 {
	spacing := borderSpacing
	if collapse == BorderCollapseCollapse {
		spacing = 0
	}

	originX := table.Style.Padding.Left + table.Style.Border.Left
	originY := table.Style.Padding.Top + table.Style.Border.Top

	currentY := originY + spacing
	placed := make(map[*tableCell]bool)
	table.Children = table.Children[:0]

	for rowIdx, row := range grid {
		currentX := originX + spacing
		rowHeight := rowHeights[rowIdx]

		for colIdx, cell := range row {
			if cell == nil {
				currentX += columnWidths[colIdx] + spacing
				continue
			}
			if placed[cell] {
				if cell.rowIdx != rowIdx {
					currentX += columnWidths[colIdx] + spacing
				}
				continue
			}

			cellWidth := 0.0
			for c := 0; c < cell.colSpan && colIdx+c < len(columnWidths); c++ {
				if c > 0 {
					cellWidth += spacing
				}
				cellWidth += columnWidths[colIdx+c]
			}
			cellHeight := 0.0
			for r := 0; r < cell.rowSpan && rowIdx+r < len(rowHeights); r++ {
				if r > 0 {
					cellHeight += spacing
				}
				cellHeight += rowHeights[rowIdx+r]
			}

			LayoutBlock(cell.node, Tight(cellWidth, cellHeight))
			cell.node.Rect = Rect{X: currentX, Y: currentY, Width: cellWidth, Height: cellHeight}

			table.Children = append(table.Children, cell.node)
			placed[cell] = true
			currentX += cellWidth + spacing
		}
		currentY += rowHeight + spacing
	}

	return currentY - originY
}

// LayoutTable performs CSS2.1 automatic table layout: builds the anonymous
// row/cell grid, sizes columns from explicit widths and shrink-to-fit
// content, sizes rows from laid-out cell content, and positions every
// cell. The resulting geometry is stashed on node.TableLayout.
func LayoutTable(node *Node, constraints Constraints) Size {
	grid := buildCellGrid(node)

	numCols := 0
	for _, row := range grid {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	borderSpacing := node.Style.BorderSpacing
	collapse := node.Style.BorderCollapse

	explicitWidth := node.Style.Width > 0
	tableWidthHint := 0.0
	if explicitWidth {
		tableWidthHint = node.Style.Width
	}

	availableWidth := constraints.MaxWidth
	if availableWidth >= Unbounded {
		availableWidth = 0
		for _, row := range grid {
			for _, cell := range row {
				if cell != nil {
					availableWidth += measureCellContentWidth(cell.node)
				}
			}
			break
		}
	}

	columnWidths := calculateColumnWidths(grid, numCols, availableWidth, tableWidthHint, borderSpacing, collapse)
	rowHeights := calculateRowHeights(grid, columnWidths)
	contentHeight := positionTableCells(node, grid, columnWidths, rowHeights, borderSpacing, collapse)

	totalWidth := node.Style.Padding.Left + node.Style.Padding.Right + node.Style.Border.Left + node.Style.Border.Right
	for _, w := range columnWidths {
		totalWidth += w
	}
	spacing := borderSpacing
	if collapse == BorderCollapseCollapse {
		spacing = 0
	}
	totalWidth += spacing * float64(numCols+1)
	if explicitWidth {
		totalWidth = node.Style.Width + node.Style.Padding.Left + node.Style.Padding.Right + node.Style.Border.Left + node.Style.Border.Right
	}

	totalHeight := contentHeight + node.Style.Padding.Top + node.Style.Padding.Bottom + node.Style.Border.Top + node.Style.Border.Bottom
	if node.Style.Height > 0 {
		totalHeight = node.Style.Height + node.Style.Padding.Top + node.Style.Padding.Bottom + node.Style.Border.Top + node.Style.Border.Bottom
	}

	node.TableLayout = &TableLayoutInfo{
		NumCols:        numCols,
		ColumnWidths:   columnWidths,
		RowHeights:     rowHeights,
		BorderSpacing:  borderSpacing,
		BorderCollapse: collapse,
	}

	size := constraints.Constrain(Size{Width: totalWidth, Height: totalHeight})
	node.Rect = Rect{Width: size.Width, Height: size.Height}
	return size
}
