package table

// Role is the closed set of positions an employee can hold. Anything else is
// rejected before the record reaches the store or any index.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleOwner    Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleOwner:
		return true
	}
	return false
}

// Employee is one record in the table. ID is assigned by the table at insert
// time, monotonically from 0, and never reused or renumbered.
type Employee struct {
	ID     int
	Name   string
	Age    int
	Salary float64
	Role   Role
}

// Column is the closed set of indexable attributes. Each column maps to a
// typed accessor at compile time; there is no dynamic field lookup.
type Column string

const (
	ColumnName   Column = "name"
	ColumnAge    Column = "age"
	ColumnSalary Column = "salary"
	ColumnRole   Column = "role"
)

func (c Column) Valid() bool {
	switch c {
	case ColumnName, ColumnAge, ColumnSalary, ColumnRole:
		return true
	}
	return false
}

// Columns lists every indexable column.
func Columns() []Column {
	return []Column{ColumnName, ColumnAge, ColumnSalary, ColumnRole}
}
