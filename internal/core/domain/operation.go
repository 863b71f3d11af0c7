package domain

// OperationFamily groups operation tags by the response shape the backing
// routine produces for them.
type OperationFamily int

const (
	FamilyUnknown OperationFamily = iota
	FamilyCreate
	FamilyRead
	FamilyUpdate
	FamilyList
)

// Operation is a tagged CRUD variant understood by a multiplexed database
// routine. Each entity defines its own closed set of variants; dispatching
// happens through this interface instead of loose strings so an unhandled
// tag is caught in one place.
type Operation interface {
	// Tag is the discriminator passed as the routine's first argument.
	Tag() string
	// Family selects the normalization rules for the routine's response.
	Family() OperationFamily
	// IDKey names the payload field carrying the server-assigned identifier
	// for create-family operations.
	IDKey() string
}

// AccountOperation enumerates the variants of the account_operation routine.
type AccountOperation string

const (
	AccountCreateGetMoney  AccountOperation = "CREATE_GET_MONEY"
	AccountCreateGiveMoney AccountOperation = "CREATE_GIVE_MONEY"
	AccountCreateComplete  AccountOperation = "CREATE_COMPLETE"
	AccountCreate          AccountOperation = "CREATE"
	AccountRead            AccountOperation = "READ"
	AccountUpdate          AccountOperation = "UPDATE"
	AccountList            AccountOperation = "LIST"
)

func (op AccountOperation) Tag() string { return string(op) }

func (op AccountOperation) Family() OperationFamily {
	switch op {
	case AccountCreateGetMoney, AccountCreateGiveMoney, AccountCreateComplete, AccountCreate:
		return FamilyCreate
	case AccountRead:
		return FamilyRead
	case AccountUpdate:
		return FamilyUpdate
	case AccountList:
		return FamilyList
	default:
		return FamilyUnknown
	}
}

func (op AccountOperation) IDKey() string { return "acid" }

// EmployeeOperation enumerates the variants of the manage_employee routine.
type EmployeeOperation string

const (
	EmployeeInsert EmployeeOperation = "INSERT"
	EmployeeSelect EmployeeOperation = "SELECT"
	EmployeeUpdate EmployeeOperation = "UPDATE"
	EmployeeList   EmployeeOperation = "LIST"
)

func (op EmployeeOperation) Tag() string { return string(op) }

func (op EmployeeOperation) Family() OperationFamily {
	switch op {
	case EmployeeInsert:
		return FamilyCreate
	case EmployeeSelect:
		return FamilyRead
	case EmployeeUpdate:
		return FamilyUpdate
	case EmployeeList:
		return FamilyList
	default:
		return FamilyUnknown
	}
}

func (op EmployeeOperation) IDKey() string { return "emp_details_id" }

// singleOperation covers routines that only ever perform one operation, such
// as create_user and create_employee. The routine has no tag argument but its
// response is normalized with the same create-family rules.
type singleOperation struct {
	tag    string
	family OperationFamily
	idKey  string
}

func (op singleOperation) Tag() string             { return op.tag }
func (op singleOperation) Family() OperationFamily { return op.family }
func (op singleOperation) IDKey() string           { return op.idKey }

// UserCreate normalizes the create_user routine's response.
var UserCreate Operation = singleOperation{tag: "CREATE", family: FamilyCreate, idKey: "user_id"}

// EmployeeDetailsCreate normalizes the create_employee routine's response.
var EmployeeDetailsCreate Operation = singleOperation{tag: "CREATE", family: FamilyCreate, idKey: "employee_id"}
