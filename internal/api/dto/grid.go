package dto

type GridResponse struct {
	Name         string `json:"name"`
	DeclaredRows int    `json:"declared_rows"`
	DeclaredCols int    `json:"declared_cols"`
}

type ListGridsResponse struct {
	Grids []GridResponse `json:"grids"`
}
