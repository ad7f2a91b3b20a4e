package entity

// StatusOK marks a successful publish in a PublishRecord.
const StatusOK = "OK"

// PublishRecord is the persisted outcome of one publish attempt, keyed by the
// entry's url. The store holds at most one record per url; a recorded url is
// never attempted again, whether the publish succeeded or not.
type PublishRecord struct {
	URL      string `dynamodbav:"url" json:"url"`
	ShortURL string `dynamodbav:"short_url" json:"short_url"`
	Title    string `dynamodbav:"title" json:"title"`
	Status   string `dynamodbav:"status" json:"status"`
	Created  string `dynamodbav:"created" json:"created"`
}

// PublishResult is the outcome of a publish attempt: OK with the
// server-assigned creation timestamp, or a failure description. Callers
// branch on Succeeded, not on field presence.
type PublishResult struct {
	Status  string
	Created string
}

func PublishSuccess(created string) PublishResult {
	return PublishResult{Status: StatusOK, Created: created}
}

func PublishFailure(err error) PublishResult {
	return PublishResult{Status: err.Error()}
}

func (r PublishResult) Succeeded() bool {
	return r.Status == StatusOK
}

// NewPublishRecord ties a publish outcome back to the entry it came from.
func NewPublishRecord(entry *FeedEntry, shortURL string, result PublishResult) *PublishRecord {
	return &PublishRecord{
		URL:      entry.Link,
		ShortURL: shortURL,
		Title:    entry.Title,
		Status:   result.Status,
		Created:  result.Created,
	}
}
