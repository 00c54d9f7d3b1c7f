package catalog

import "github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"

// Entity names double as route segments under /api.
const (
	Customers    = "customers"
	Cases        = "cases"
	Engagements  = "engagements"
	Contracts    = "contracts"
	Documents    = "documents"
	Tasks        = "tasks"
	Invoices     = "invoices"
	Compliance   = "compliance"
	Risks        = "risks"
	Matters      = "matters"
	Transactions = "transactions"
)

// Descriptors returns a fresh copy of every entity descriptor, in menu order.
func Descriptors() []*record.Descriptor {
	return []*record.Descriptor{
		customers(),
		cases(),
		engagements(),
		contracts(),
		documents(),
		tasks(),
		invoices(),
		compliance(),
		risks(),
		matters(),
		transactions(),
	}
}

func customers() *record.Descriptor {
	cols := []string{
		"customer_id", "customer_name", "contact_person", "contact_number",
		"email_address", "industry_type", "registration_date", "customer_status",
		"address_line",
	}
	return &record.Descriptor{
		Name:       Customers,
		Label:      "customer",
		Table:      "customers",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"customer_name", "contact_person", "contact_number", "email_address",
			"industry_type", "registration_date", "customer_status",
		},
		Updatable: except(cols, "customer_id"),
		Filters: []record.Filter{
			{Param: "search", Columns: []string{"customer_name", "email_address", "contact_person"}, Mode: record.Contains},
			{Param: "status", Columns: []string{"customer_status"}},
			{Param: "industry", Columns: []string{"industry_type"}},
		},
		Sort: record.Sort{Column: "created_at", Desc: true},
		Code: &record.Code{Column: "customer_id", Prefix: "CUST"},
		Dependents: []record.Dependent{
			{Table: "cases", Column: "client_id", Label: "cases"},
			{Table: "engagements", Column: "client_id", Label: "engagements"},
			{Table: "legal_contracts", Column: "client_id", Label: "contracts"},
			{Table: "legal_invoices", Column: "client_id", Label: "invoices"},
			{Table: "legal_matters", Column: "client_id", Label: "matters"},
			{Table: "legal_transactions", Column: "client_id", Label: "transactions"},
		},
	}
}

func cases() *record.Descriptor {
	cols := []string{
		"case_id", "case_title", "client_id", "case_type", "case_status",
		"assigned_attorney", "filing_date", "court_name", "hearing_date",
	}
	return &record.Descriptor{
		Name:       Cases,
		Label:      "case",
		Table:      "cases",
		Alias:      "c",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"case_title", "client_id", "case_type", "case_status",
			"assigned_attorney", "filing_date",
		},
		Updatable: except(cols, "case_id"),
		Filters: []record.Filter{
			{Param: "search", Columns: []string{"case_title", "case_id"}, Mode: record.Contains},
			{Param: "status", Columns: []string{"case_status"}},
			{Param: "type", Columns: []string{"case_type"}},
			{Param: "client_id", Columns: []string{"client_id"}},
			{Param: "attorney", Columns: []string{"assigned_attorney"}, Mode: record.Contains},
		},
		Sort: record.Sort{Column: "created_at", Desc: true},
		Join: &record.Join{
			Clause: "LEFT JOIN customers cu ON c.client_id = cu.id",
			Select: []string{"cu.customer_name", "cu.email_address AS customer_email"},
			Export: []string{"cu.customer_name"},
		},
		Code: &record.Code{Column: "case_id", Prefix: "CASE"},
		Dependents: []record.Dependent{
			{Table: "legal_documents", Column: "associated_case_id", Label: "documents"},
			{Table: "legal_tasks", Column: "related_case_id", Label: "tasks"},
			{Table: "legal_invoices", Column: "case_id", Label: "invoices"},
		},
		Scopes: []record.Scope{{Path: "by-customer", Filter: "client_id"}},
	}
}

func engagements() *record.Descriptor {
	cols := []string{
		"engagement_id", "client_id", "engagement_type", "engagement_date",
		"engagement_outcome", "contact_person", "recorded_by", "engagement_channel",
		"engagement_notes",
	}
	return &record.Descriptor{
		Name:       Engagements,
		Label:      "engagement",
		Table:      "engagements",
		Alias:      "e",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"client_id", "engagement_type", "engagement_date", "engagement_channel",
			"engagement_outcome", "contact_person",
		},
		Updatable: except(cols, "engagement_id"),
		Filters: []record.Filter{
			{Param: "search", Columns: []string{"engagement_notes", "cu.customer_name"}, Mode: record.Contains},
			{Param: "client_id", Columns: []string{"client_id"}},
			{Param: "type", Columns: []string{"engagement_type"}},
			{Param: "channel", Columns: []string{"engagement_channel"}},
			{Param: "outcome", Columns: []string{"engagement_outcome"}},
		},
		Sort: record.Sort{Column: "created_at", Desc: true},
		Join: &record.Join{
			Clause: "LEFT JOIN customers cu ON e.client_id = cu.id",
			Select: []string{"cu.customer_name"},
		},
		Code:   &record.Code{Column: "engagement_id", Prefix: "ENG"},
		Scopes: []record.Scope{{Path: "by-customer", Filter: "client_id"}},
	}
}

func contracts() *record.Descriptor {
	cols := []string{
		"contract_id", "contract_title", "client_id", "start_date", "end_date",
		"contract_value", "contract_status", "signed_by", "renewal_terms",
	}
	return &record.Descriptor{
		Name:       Contracts,
		Label:      "contract",
		Table:      "legal_contracts",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"contract_id", "contract_title", "client_id", "start_date", "end_date",
			"contract_value", "contract_status", "signed_by",
		},
		Updatable: except(cols, "contract_id"),
		Filters: []record.Filter{
			{Param: "status", Columns: []string{"contract_status"}},
			{Param: "client_id", Columns: []string{"client_id"}},
			{Param: "search", Columns: []string{"contract_title", "contract_id"}, Mode: record.Contains},
		},
		Sort: record.Sort{Column: "created_at", Desc: true},
		Dependents: []record.Dependent{
			{Table: "legal_transactions", Column: "related_contract_id", Label: "transactions"},
		},
		Scopes: []record.Scope{{Path: "by-customer", Filter: "client_id"}},
	}
}

func documents() *record.Descriptor {
	cols := []string{
		"document_title", "document_type", "uploaded_by", "associated_case_id",
		"storage_location", "document_status", "document_version",
	}
	return &record.Descriptor{
		Name:       Documents,
		Label:      "document",
		Table:      "legal_documents",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"document_title", "document_type", "uploaded_by", "storage_location",
			"document_status", "document_version",
		},
		Updatable: cols,
		Filters: []record.Filter{
			{Param: "case_id", Columns: []string{"associated_case_id"}},
			{Param: "status", Columns: []string{"document_status"}},
			{Param: "type", Columns: []string{"document_type"}},
			{Param: "search", Columns: []string{"document_title"}, Mode: record.Contains},
		},
		Sort:   record.Sort{Column: "upload_date", Desc: true},
		Scopes: []record.Scope{{Path: "by-case", Filter: "case_id"}},
	}
}

func tasks() *record.Descriptor {
	cols := []string{
		"task_title", "assigned_to", "due_date", "task_status", "priority_level",
		"related_case_id", "task_description",
	}
	return &record.Descriptor{
		Name:       Tasks,
		Label:      "task",
		Table:      "legal_tasks",
		PrimaryKey: "id",
		Columns:    cols,
		Required:   []string{"task_title", "assigned_to", "due_date", "task_status", "priority_level"},
		Updatable:  cols,
		Filters: []record.Filter{
			{Param: "case_id", Columns: []string{"related_case_id"}},
			{Param: "status", Columns: []string{"task_status"}},
			{Param: "assigned_to", Columns: []string{"assigned_to"}},
			{Param: "priority", Columns: []string{"priority_level"}},
		},
		Sort:   record.Sort{Column: "due_date"},
		Scopes: []record.Scope{{Path: "by-case", Filter: "case_id"}},
	}
}

func invoices() *record.Descriptor {
	cols := []string{
		"invoice_id", "client_id", "case_id", "invoice_date", "due_date",
		"invoice_amount", "tax_amount", "invoice_status", "payment_reference",
	}
	return &record.Descriptor{
		Name:       Invoices,
		Label:      "invoice",
		Table:      "legal_invoices",
		Alias:      "li",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"invoice_id", "client_id", "invoice_date", "due_date",
			"invoice_amount", "tax_amount", "invoice_status",
		},
		Updatable: except(cols, "invoice_id"),
		Filters: []record.Filter{
			{Param: "status", Columns: []string{"invoice_status"}},
			{Param: "client_id", Columns: []string{"client_id"}},
			{Param: "case_id", Columns: []string{"case_id"}},
		},
		Sort: record.Sort{Column: "invoice_date", Desc: true},
		Join: &record.Join{
			Clause: "LEFT JOIN customers c ON li.client_id = c.id LEFT JOIN cases cs ON li.case_id = cs.id",
			Select: []string{"c.customer_name AS client_name", "cs.case_id AS case_number", "cs.case_title"},
		},
		Scopes: []record.Scope{{Path: "by-customer", Filter: "client_id"}},
	}
}

func compliance() *record.Descriptor {
	cols := []string{
		"compliance_id", "regulation_name", "entity_checked", "compliance_date",
		"compliance_status", "responsible_officer", "action_required",
		"next_review_date", "remarks",
	}
	return &record.Descriptor{
		Name:       Compliance,
		Label:      "compliance record",
		Table:      "legal_compliance",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"compliance_id", "regulation_name", "entity_checked", "compliance_date",
			"compliance_status", "responsible_officer",
		},
		Updatable: except(cols, "compliance_id"),
		Filters: []record.Filter{
			{Param: "status", Columns: []string{"compliance_status"}},
			{Param: "search", Columns: []string{"regulation_name", "entity_checked"}, Mode: record.Contains},
		},
		Sort: record.Sort{Column: "compliance_date", Desc: true},
	}
}

func risks() *record.Descriptor {
	cols := []string{
		"risk_id", "risk_type", "risk_description", "identified_by", "identified_date",
		"risk_severity", "mitigation_plan", "review_date", "risk_status",
	}
	return &record.Descriptor{
		Name:       Risks,
		Label:      "risk",
		Table:      "legal_risks",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"risk_id", "risk_type", "risk_description", "identified_by",
			"identified_date", "risk_severity", "risk_status",
		},
		Updatable: except(cols, "risk_id"),
		Filters: []record.Filter{
			{Param: "severity", Columns: []string{"risk_severity"}},
			{Param: "status", Columns: []string{"risk_status"}},
		},
		Sort: record.Sort{Column: "identified_date", Desc: true},
	}
}

func matters() *record.Descriptor {
	cols := []string{
		"matter_id", "matter_title", "matter_description", "matter_type", "client_id",
		"attorney_assigned", "open_date", "matter_status", "jurisdiction",
		"opposing_party", "key_deadlines", "amount_billed", "matter_outcome",
	}
	return &record.Descriptor{
		Name:       Matters,
		Label:      "matter",
		Table:      "legal_matters",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"matter_id", "matter_title", "matter_type", "client_id",
			"attorney_assigned", "open_date", "matter_status", "jurisdiction",
		},
		Updatable: except(cols, "matter_id"),
		Filters: []record.Filter{
			{Param: "status", Columns: []string{"matter_status"}},
			{Param: "client_id", Columns: []string{"client_id"}},
		},
		Sort:         record.Sort{Column: "open_date", Desc: true},
		DefaultLimit: 50,
		Scopes:       []record.Scope{{Path: "by-customer", Filter: "client_id"}},
	}
}

func transactions() *record.Descriptor {
	cols := []string{
		"transaction_id", "transaction_type", "client_id", "transaction_date",
		"transaction_value", "legal_advisor", "related_contract_id",
		"approval_status", "closing_date",
	}
	return &record.Descriptor{
		Name:       Transactions,
		Label:      "transaction",
		Table:      "legal_transactions",
		PrimaryKey: "id",
		Columns:    cols,
		Required: []string{
			"transaction_id", "transaction_type", "client_id", "transaction_date",
			"transaction_value", "legal_advisor", "approval_status",
		},
		Updatable: except(cols, "transaction_id"),
		Filters: []record.Filter{
			{Param: "status", Columns: []string{"approval_status"}},
			{Param: "client_id", Columns: []string{"client_id"}},
			{Param: "contract_id", Columns: []string{"related_contract_id"}},
		},
		Sort:         record.Sort{Column: "transaction_date", Desc: true},
		DefaultLimit: 50,
	}
}

// except returns cols without the named columns.
func except(cols []string, drop ...string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		skip := false
		for _, d := range drop {
			if c == d {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}
