package entity

// CategoryNameMaxLength caps category names.
const CategoryNameMaxLength = 100

// Category groups articles. Names are unique by convention only.
type Category struct {
	ID   int64
	Name string
}

// Validate checks the category name.
func (c *Category) Validate() error {
	var errs ValidationErrors
	errs.Add(ValidateLength("name", c.Name, 1, CategoryNameMaxLength))
	return errs.OrNil()
}
