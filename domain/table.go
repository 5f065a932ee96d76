package domain

// Table is a mongo collection name.
type Table string

const (
	TableListings    Table = "marketplace_listings"
	TableProceeds    Table = "marketplace_proceeds"
	TableActivities  Table = "marketplace_activities"
	TableHealthCheck Table = "healthcheck"
)
