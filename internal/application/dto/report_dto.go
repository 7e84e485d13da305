package dto

// StockReportResponse fila del reporte de máximo stock por sucursal.
type StockReportResponse struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	Stock         int    `json:"stock"`
	BranchID      int64  `json:"branch_id"`
	BranchName    string `json:"branch_name"`
	FranchiseID   int64  `json:"franchise_id"`
	FranchiseName string `json:"franchise_name"`
}
