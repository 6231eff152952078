package models

// GroupCount is one group of a group-by aggregation. Status is the group key;
// groups with a null key are excluded from responses, not merged into an
// "unknown" bucket.
type GroupCount struct {
	Status string `json:"_id" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// TrendPoint is one day of a daily time series. Days with no activity are not
// synthesized; the series is sparse.
type TrendPoint struct {
	Date  string `json:"_id" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// AdminOverview carries the raw and derived collection counts.
type AdminOverview struct {
	TotalProjects     int64 `json:"totalProjects"`
	TotalClients      int64 `json:"totalClients"`
	TotalContacts     int64 `json:"totalContacts"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalMessages     int64 `json:"totalMessages"`
	TotalFiles        int64 `json:"totalFiles"`
	ClientProjects    int64 `json:"clientProjects"`
	UnreadMessages    int64 `json:"unreadMessages"`
	RecentContacts    int64 `json:"recentContacts"`
	RecentSubscribers int64 `json:"recentSubscribers"`
}

// AdminStats is the composite admin dashboard payload. The underlying queries
// are independent point reads with no snapshot isolation across them.
type AdminStats struct {
	Overview            AdminOverview `json:"overview"`
	ProjectStatus       []GroupCount  `json:"projectStatus"`
	ClientProjectStatus []GroupCount  `json:"clientProjectStatus"`
	ContactsTrend       []TrendPoint  `json:"contactsTrend"`
	SubscribersTrend    []TrendPoint  `json:"subscribersTrend"`
	TopClients          []Client      `json:"topClients"`
}

// ClientStats is the client portal dashboard payload.
type ClientStats struct {
	ActiveProjects int64 `json:"activeProjects"`
	UnreadMessages int64 `json:"unreadMessages"`
	TotalFiles     int64 `json:"totalFiles"`
	TeamMembers    int   `json:"teamMembers"`
}
