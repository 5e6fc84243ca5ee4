package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	codeMocks "lessonbot/internal/common/codes/mocks"
	"lessonbot/internal/notifier"
	notifierMocks "lessonbot/internal/notifier/mocks"
	verificationRepo "lessonbot/internal/repositories/verification"
	repoMocks "lessonbot/internal/repositories/verification/mocks"
)

type VerificationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *repoMocks.MockRepository
	mockNotifier *notifierMocks.MockNotifier
	mockCodes    *codeMocks.MockGenerator
	ctx          context.Context

	// Fixtures
	testChatID int64
	testEmail  string
	testCode   int
}

func TestVerificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}

func (s *VerificationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.ctrl)
	s.mockNotifier = notifierMocks.NewMockNotifier(s.ctrl)
	s.mockCodes = codeMocks.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	s.testChatID = int64(4242)
	s.testEmail = "mario.rossi@studenti.unipg.it"
	s.testCode = 54321
}

func (s *VerificationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newService builds a service with synchronous dispatch so delivery
// outcomes are observable in-line
func (s *VerificationServiceTestSuite) newService(onFailure DeliveryFailureFunc) *service {
	svc, err := New(&Config{
		Domain:            "studenti.unipg.it",
		CodeRepo:          s.mockRepo,
		Notifier:          s.mockNotifier,
		Codes:             s.mockCodes,
		Dispatch:          func(fn func()) { fn() },
		OnDeliveryFailure: onFailure,
	})
	s.Require().NoError(err)
	return svc
}

func (s *VerificationServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{
		CodeRepo: s.mockRepo,
		Notifier: s.mockNotifier,
		Codes:    s.mockCodes,
	})
	s.Require().ErrorIs(err, ErrEmptyDomain)
}

func (s *VerificationServiceTestSuite) TestIssue_Success() {
	svc := s.newService(nil)

	s.mockCodes.EXPECT().Generate().Return(s.testCode)
	s.mockRepo.EXPECT().BindCode(s.ctx, &verificationRepo.BindCodeInput{
		ChatID: s.testChatID,
		Code:   s.testCode,
	}).Return(nil)
	s.mockNotifier.EXPECT().Send(gomock.Any(), &notifier.SendInput{
		Email: s.testEmail,
		Code:  s.testCode,
	}).Return(nil)

	out, err := svc.Issue(s.ctx, &IssueInput{
		ChatID: s.testChatID,
		Email:  s.testEmail,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Equal(s.testCode, out.Code)
}

func (s *VerificationServiceTestSuite) TestIssue_LowercasesEmail() {
	svc := s.newService(nil)

	s.mockCodes.EXPECT().Generate().Return(s.testCode)
	s.mockRepo.EXPECT().BindCode(s.ctx, gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().Send(gomock.Any(), &notifier.SendInput{
		Email: s.testEmail,
		Code:  s.testCode,
	}).Return(nil)

	_, err := svc.Issue(s.ctx, &IssueInput{
		ChatID: s.testChatID,
		Email:  "Mario.Rossi@Studenti.UNIPG.it",
	})
	s.Require().NoError(err)
}

func (s *VerificationServiceTestSuite) TestIssue_InvalidDomain() {
	svc := s.newService(nil)

	// No generate, bind or send expectations: the address is rejected
	// before any of them run
	out, err := svc.Issue(s.ctx, &IssueInput{
		ChatID: s.testChatID,
		Email:  "mario.rossi@gmail.com",
	})
	s.Require().ErrorIs(err, ErrInvalidDomain)
	s.Nil(out)
}

func (s *VerificationServiceTestSuite) TestIssue_SuffixMustBeWholeDomain() {
	svc := s.newService(nil)

	_, err := svc.Issue(s.ctx, &IssueInput{
		ChatID: s.testChatID,
		Email:  "mario@notstudenti.unipg.it.evil.com",
	})
	s.Require().ErrorIs(err, ErrInvalidDomain)
}

func (s *VerificationServiceTestSuite) TestIssue_BindError() {
	svc := s.newService(nil)
	bindErr := errors.New("redis unavailable")

	s.mockCodes.EXPECT().Generate().Return(s.testCode)
	s.mockRepo.EXPECT().BindCode(s.ctx, gomock.Any()).Return(bindErr)

	out, err := svc.Issue(s.ctx, &IssueInput{
		ChatID: s.testChatID,
		Email:  s.testEmail,
	})
	s.Require().ErrorIs(err, bindErr)
	s.Nil(out)
}

func (s *VerificationServiceTestSuite) TestIssue_DeliveryFailureClearsCode() {
	var failedChat int64
	var failedEmail string
	var failedErr error
	svc := s.newService(func(chatID int64, email string, err error) {
		failedChat = chatID
		failedEmail = email
		failedErr = err
	})

	sendErr := errors.New("smtp handshake failed")

	s.mockCodes.EXPECT().Generate().Return(s.testCode)
	s.mockRepo.EXPECT().BindCode(s.ctx, gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr)
	s.mockRepo.EXPECT().ClearCode(gomock.Any(), &verificationRepo.ClearCodeInput{
		ChatID: s.testChatID,
	}).Return(nil)

	_, err := svc.Issue(s.ctx, &IssueInput{
		ChatID: s.testChatID,
		Email:  s.testEmail,
	})
	s.Require().NoError(err)
	s.Equal(s.testChatID, failedChat)
	s.Equal(s.testEmail, failedEmail)
	s.Require().ErrorIs(failedErr, sendErr)
}

func (s *VerificationServiceTestSuite) TestCheck_Match() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().ConsumeCode(s.ctx, &verificationRepo.ConsumeCodeInput{
		ChatID: s.testChatID,
	}).Return(&verificationRepo.ConsumeCodeOutput{Code: s.testCode}, nil)

	out, err := svc.Check(s.ctx, &CheckInput{
		ChatID:    s.testChatID,
		Submitted: "54321",
	})
	s.Require().NoError(err)
	s.True(out.Matched)
}

func (s *VerificationServiceTestSuite) TestCheck_TrimsWhitespace() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().ConsumeCode(s.ctx, gomock.Any()).
		Return(&verificationRepo.ConsumeCodeOutput{Code: s.testCode}, nil)

	out, err := svc.Check(s.ctx, &CheckInput{
		ChatID:    s.testChatID,
		Submitted: " 54321 ",
	})
	s.Require().NoError(err)
	s.True(out.Matched)
}

func (s *VerificationServiceTestSuite) TestCheck_Mismatch() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().ConsumeCode(s.ctx, gomock.Any()).
		Return(&verificationRepo.ConsumeCodeOutput{Code: s.testCode}, nil)

	out, err := svc.Check(s.ctx, &CheckInput{
		ChatID:    s.testChatID,
		Submitted: "11111",
	})
	s.Require().NoError(err)
	s.False(out.Matched)
}

func (s *VerificationServiceTestSuite) TestCheck_NonNumericConsumesCode() {
	svc := s.newService(nil)

	// The pending code is still consumed even though the input cannot
	// match it
	s.mockRepo.EXPECT().ConsumeCode(s.ctx, gomock.Any()).
		Return(&verificationRepo.ConsumeCodeOutput{Code: s.testCode}, nil)

	out, err := svc.Check(s.ctx, &CheckInput{
		ChatID:    s.testChatID,
		Submitted: "not a code",
	})
	s.Require().NoError(err)
	s.False(out.Matched)
}

func (s *VerificationServiceTestSuite) TestCheck_NoPendingCode() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().ConsumeCode(s.ctx, gomock.Any()).
		Return(nil, verificationRepo.ErrCodeNotFound)

	out, err := svc.Check(s.ctx, &CheckInput{
		ChatID:    s.testChatID,
		Submitted: "54321",
	})
	s.Require().NoError(err)
	s.False(out.Matched)
}

func (s *VerificationServiceTestSuite) TestCheck_RepoError() {
	svc := s.newService(nil)
	repoErr := errors.New("redis unavailable")

	s.mockRepo.EXPECT().ConsumeCode(s.ctx, gomock.Any()).Return(nil, repoErr)

	out, err := svc.Check(s.ctx, &CheckInput{
		ChatID:    s.testChatID,
		Submitted: "54321",
	})
	s.Require().ErrorIs(err, repoErr)
	s.Nil(out)
}

func (s *VerificationServiceTestSuite) TestInvalidate() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().ClearCode(s.ctx, &verificationRepo.ClearCodeInput{
		ChatID: s.testChatID,
	}).Return(nil)

	err := svc.Invalidate(s.ctx, &InvalidateInput{ChatID: s.testChatID})
	s.Require().NoError(err)
}
