package dto

// TableInfoDTO is one row of GET /api/tables-info.
type TableInfoDTO struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type DeleteTableDTO struct {
	TableName string `json:"tableName" form:"tableName" validate:"required,notblank"`
}
