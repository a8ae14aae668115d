package common

//分页参数，pageNumber 从0开始
type Page struct {
	PageNumber int `json:"pageNumber" form:"pageNumber"`
	PageSize   int `json:"pageSize" form:"pageSize"`
}

func (p *Page) GetStart() int {
	if p.PageNumber < 0 {
		return 0
	}
	return p.PageNumber * p.PageSize
}
