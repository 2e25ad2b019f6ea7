package gmail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "defaults exclude spam and trash",
			cfg:  Config{},
			want: "-in:spam -in:trash",
		},
		{
			name: "include_spam_trash drops the exclusion",
			cfg:  Config{IncludeSpamTrash: true},
			want: "",
		},
		{
			name: "user query comes first",
			cfg:  Config{Query: "from:alice@example.com"},
			want: "from:alice@example.com -in:spam -in:trash",
		},
		{
			name: "start date formatted without leading zeros",
			cfg:  Config{IncludeSpamTrash: true, StartDate: "2024-01-05T00:00:00Z"},
			want: "after:2024/1/5",
		},
		{
			name: "plain date accepted",
			cfg:  Config{IncludeSpamTrash: true, StartDate: "2023-11-20"},
			want: "after:2023/11/20",
		},
		{
			name: "unparseable start date passed through",
			cfg:  Config{IncludeSpamTrash: true, StartDate: "last tuesday"},
			want: "after:last tuesday",
		},
		{
			name: "all clauses combined",
			cfg:  Config{Query: "has:attachment", StartDate: "2024-06-01"},
			want: "has:attachment -in:spam -in:trash after:2024/6/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.BuildQuery())
		})
	}
}

func TestIsSpamOrTrash(t *testing.T) {
	assert.False(t, IsSpamOrTrash(nil))
	assert.False(t, IsSpamOrTrash([]string{"INBOX", "UNREAD"}))
	assert.True(t, IsSpamOrTrash([]string{"INBOX", "SPAM"}))
	assert.True(t, IsSpamOrTrash([]string{"TRASH"}))
}

func TestFromConnectorConfig(t *testing.T) {
	src := &config.Config{
		ClientID:         "id",
		ClientSecret:     "secret",
		RefreshToken:     "token",
		IncludeSpamTrash: true,
		Query:            "is:unread",
		Labels:           []string{"INBOX", "IMPORTANT"},
		StartDate:        "2024-01-01",
		IncludeRaw:       true,
	}

	cfg := FromConnectorConfig(src)

	assert.Equal(t, "is:unread", cfg.Query)
	assert.Equal(t, []string{"INBOX", "IMPORTANT"}, cfg.LabelIDs)
	assert.Equal(t, "2024-01-01", cfg.StartDate)
	assert.True(t, cfg.IncludeSpamTrash)
	assert.True(t, cfg.IncludeRaw)
	assert.Equal(t, int64(DefaultPageSize), cfg.PageSize)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)

	// The label slice is copied, not aliased.
	src.Labels[0] = "changed"
	assert.Equal(t, "INBOX", cfg.LabelIDs[0])
}
