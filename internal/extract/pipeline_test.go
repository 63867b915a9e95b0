package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textDoc(name, body string) Document {
	return Document{Name: name, Format: "txt", Data: []byte(body)}
}

func TestPipelineSampleResume(t *testing.T) {
	p := &Pipeline{Required: NewSkillSet("Python", "SQL", "Machine Learning")}

	batch, err := p.Run(context.Background(), []Document{textDoc("john.txt", sampleResume)})
	require.NoError(t, err)

	records := batch.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 0, batch.Skipped())

	record := records[0]
	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "john.smith@example.com", record.Email)
	assert.Equal(t, "5 years", record.Experience)
	assert.Equal(t, "Developer", record.Role)
	assert.Equal(t, []string{"Machine Learning"}, record.MissingSkills)
	assert.Empty(t, record.ExtraSkills)
}

func TestPipelineSkipsCorruptDocument(t *testing.T) {
	p := &Pipeline{Required: NewSkillSet("Python")}

	docs := []Document{
		textDoc("a.txt", "Alice Aronson knows Python"),
		textDoc("b.txt", "Bob Brown knows Python"),
		{Name: "c.pdf", Format: "pdf", Data: []byte("broken bytes")},
		textDoc("d.txt", "Dora Diaz knows Python"),
		textDoc("e.txt", "Eve Evans knows Python"),
	}

	batch, err := p.Run(context.Background(), docs)
	require.NoError(t, err)

	assert.Len(t, batch.Records(), 4)
	assert.Equal(t, 1, batch.Skipped())
}

func TestPipelinePreservesInputOrder(t *testing.T) {
	p := &Pipeline{Required: NewSkillSet(), Workers: 4}

	docs := []Document{
		textDoc("1.txt", "Alice Aronson"),
		textDoc("2.txt", "Bob Brown"),
		textDoc("3.txt", "Carol Chase"),
		textDoc("4.txt", "Dora Diaz"),
		textDoc("5.txt", "Eve Evans"),
	}

	batch, err := p.Run(context.Background(), docs)
	require.NoError(t, err)

	records := batch.Records()
	require.Len(t, records, 5)
	want := []string{"Alice Aronson", "Bob Brown", "Carol Chase", "Dora Diaz", "Eve Evans"}
	for i, record := range records {
		assert.Equal(t, want[i], record.Name)
	}
}

func TestPipelineEmptyBatch(t *testing.T) {
	p := &Pipeline{Required: NewSkillSet("Python")}

	batch, err := p.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, batch.Records())
	assert.Equal(t, 0, batch.Skipped())
}

func TestPipelineUnsupportedFormatDegradesToSentinels(t *testing.T) {
	required := NewSkillSet("Python", "SQL")
	p := &Pipeline{Required: required}

	batch, err := p.Run(context.Background(), []Document{
		{Name: "weird.odt", Format: "odt", Data: []byte("Jane Doe jane@example.com")},
	})
	require.NoError(t, err)

	records := batch.Records()
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, NameUnknown, record.Name)
	assert.Equal(t, EmailNotFound, record.Email)
	assert.Equal(t, ExperienceNotMentioned, record.Experience)
	assert.Equal(t, RoleGeneral, record.Role)
	assert.Equal(t, required.Names(), record.MissingSkills)
	assert.Empty(t, record.UnexpectedSkills)
}

func TestPipelineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Pipeline{Required: NewSkillSet("Python")}
	batch, err := p.Run(ctx, []Document{textDoc("a.txt", "Alice Aronson")})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, batch)
}
