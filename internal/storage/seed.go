package storage

// builtinSupportArticles is the fixed article set installed by
// SeedSupportArticles when the collection is empty. Seeding is an explicit
// startup step; the read path never writes.
var builtinSupportArticles = []*SupportArticle{
	{
		ID:       "art-getting-started",
		Title:    "Getting started with your landlord portal",
		Body:     "Add your first property, then invite tenants by email. Tenants appear under Verification Requests once they apply.",
		Category: "onboarding",
	},
	{
		ID:       "art-verification",
		Title:    "How tenant verification works",
		Body:     "A tenant's application stays pending until you approve or reject it. Approving records the verification date and starts the stay.",
		Category: "verification",
	},
	{
		ID:       "art-billing",
		Title:    "Creating and tracking bills",
		Body:     "Bills start as PENDING and move to PAID when marked paid. Overdue bills are flagged on the dashboard.",
		Category: "billing",
	},
	{
		ID:       "art-documents",
		Title:    "Sharing documents with tenants",
		Body:     "Documents are visible to the tenant and landlord they are scoped to. Either party can upload.",
		Category: "documents",
	},
	{
		ID:       "art-maintenance",
		Title:    "Handling maintenance requests",
		Body:     "Tenants file requests against your property. Update the status as work progresses; tenants see changes immediately.",
		Category: "maintenance",
	},
}

func seedArticles() []*SupportArticle {
	out := make([]*SupportArticle, len(builtinSupportArticles))
	for i, a := range builtinSupportArticles {
		c := *a
		out[i] = &c
	}
	return out
}
