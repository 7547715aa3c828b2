package emailqueue

import (
	"context"
	"errors"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/rabbitmq/schema"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
)

const QUEUE = "emails"

type fakeChannel struct {
	published   []amqp.Publishing
	keys        []string
	ReturnError bool
}

func (ch *fakeChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	if ch.ReturnError {
		return errors.New("channel closed")
	}
	ch.keys = append(ch.keys, key)
	ch.published = append(ch.published, msg)
	return nil
}

type testSuite struct {
	suite.Suite
	channel   *fakeChannel
	publisher *Publisher
}

func (suite *testSuite) SetupTest() {
	suite.channel = &fakeChannel{}
	suite.publisher = New(logging.NewFakeLogger(), suite.channel, QUEUE)
}

func (suite *testSuite) TestConfirmationTokenPublished() {
	assert := suite.Require()

	err := suite.publisher.SendConfirmationToken(context.Background(), c.Email("john@doe.com"), "abc")
	assert.Nil(err)
	assert.Equal([]string{QUEUE}, suite.channel.keys)

	published := suite.channel.published[0]
	assert.Equal("application/json", published.ContentType)
	assert.Equal(amqp.Persistent, published.DeliveryMode)

	msg := schema.Email{}
	assert.Nil(msg.Unmarshal(published.Body))
	assert.Equal(schema.Email{Kind: schema.EmailConfirmation, To: "john@doe.com", Token: "abc"}, msg)
}

func (suite *testSuite) TestPasswordResetTokenPublished() {
	assert := suite.Require()

	err := suite.publisher.SendPasswordResetToken(context.Background(), c.Email("john@doe.com"), "xyz")
	assert.Nil(err)

	msg := schema.Email{}
	assert.Nil(msg.Unmarshal(suite.channel.published[0].Body))
	assert.Equal(schema.EmailPasswordReset, msg.Kind)
	assert.Equal("xyz", msg.Token)
}

func (suite *testSuite) TestPublishFailureReturned() {
	assert := suite.Require()
	suite.channel.ReturnError = true

	err := suite.publisher.SendConfirmationToken(context.Background(), c.Email("john@doe.com"), "abc")
	assert.NotNil(err)
	assert.Empty(suite.channel.published)
}

func TestEmailQueuePublisher(t *testing.T) {
	suite.Run(t, new(testSuite))
}
