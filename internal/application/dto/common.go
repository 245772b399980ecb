package dto

// PageRequest paginación por número de página.
type PageRequest struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Q     string `query:"q"`
}

// Normalize aplica valores por defecto: page >= 1, 1 <= limit <= max.
func (p *PageRequest) Normalize(defLimit, max int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defLimit
	}
	if p.Limit > max {
		p.Limit = max
	}
}

// Offset desplazamiento correspondiente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPagination calcula el número de páginas.
func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
