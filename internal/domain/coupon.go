package domain

// Coupon промокод на процентную скидку
type Coupon struct {
	Name       string
	Percentage int // 0-100
	Used       int
	MaxUses    int
}

// IsExhausted true, если лимит использований исчерпан
func (c *Coupon) IsExhausted() bool {
	return c.MaxUses <= c.Used
}
