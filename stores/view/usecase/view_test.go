package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	"github.com/x-xyz/contractmeta/domain/mocks"
	"github.com/x-xyz/contractmeta/domain/view"
)

const (
	bayc        = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	whiteRabbit = domain.Address("0x97ed92e744c10fdd5d403a756239c4069e415e79")
)

func success(name string) func(bCtx.Ctx, string, domain.Address) *domain.Outcome {
	return func(_ bCtx.Ctx, network string, address domain.Address) *domain.Outcome {
		return domain.SuccessOutcome("ipfs://Qm", "https://ipfs.io/ipfs/Qm", &domain.ResolvedMetadata{Name: &name}).
			WithContract(network, address)
	}
}

type viewSuite struct {
	suite.Suite

	ctx      bCtx.Ctx
	metadata *mocks.MetadataUseCase
	im       view.UseCase
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(viewSuite))
}

func (s *viewSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.metadata = &mocks.MetadataUseCase{}
	s.im = New(s.metadata)
}

func (s *viewSuite) TearDownTest() {
	s.metadata.AssertExpectations(s.T())
}

func (s *viewSuite) wait(id string) *view.View {
	c, cancel := bCtx.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()
	v, err := s.im.Wait(c, id)
	s.Require().NoError(err)
	return v
}

func (s *viewSuite) TestCreate() {
	v, err := s.im.Create(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(v.Id)
	s.Equal(domain.StateIdle, v.Outcome.State)
	s.Equal(uint64(0), v.Generation)

	got, err := s.im.Get(s.ctx, v.Id)
	s.Require().NoError(err)
	s.Equal(v.Id, got.Id)

	// nothing in flight
	s.Equal(domain.StateIdle, s.wait(v.Id).Outcome.State)
}

func (s *viewSuite) TestNotFound() {
	_, err := s.im.Get(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.im.Submit(s.ctx, "missing", "polygon", bayc)
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.im.Wait(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
	s.ErrorIs(s.im.Delete(s.ctx, "missing"), domain.ErrNotFound)
}

func (s *viewSuite) TestSubmitUnsetAddress() {
	v, _ := s.im.Create(s.ctx)

	got, err := s.im.Submit(s.ctx, v.Id, "polygon", domain.EmptyAddress)
	s.Require().NoError(err)
	s.Equal(domain.StateNoAddress, got.Outcome.State)
	s.Equal(uint64(1), got.Generation)
	s.Equal(domain.StateNoAddress, s.wait(v.Id).Outcome.State)
}

func (s *viewSuite) TestSubmit() {
	v, _ := s.im.Create(s.ctx)
	s.metadata.On("ResolveContract", mock.Anything, "polygon", bayc).Return(success("BAYC")).Once()

	got, err := s.im.Submit(s.ctx, v.Id, "polygon", bayc)
	s.Require().NoError(err)
	s.Equal(uint64(1), got.Generation)
	s.Contains([]domain.ResolutionState{domain.StatePending, domain.StateSuccess}, got.Outcome.State)

	done := s.wait(v.Id)
	s.Equal(domain.StateSuccess, done.Outcome.State)
	s.Equal("BAYC", *done.Outcome.Metadata.Name)
	s.Equal(bayc, done.Outcome.Address)
}

func (s *viewSuite) TestLastSubmissionWins() {
	v, _ := s.im.Create(s.ctx)

	started := make(chan struct{})
	released := make(chan error, 1)
	s.metadata.On("ResolveContract", mock.Anything, "polygon", bayc).Return(
		func(c bCtx.Ctx, network string, address domain.Address) *domain.Outcome {
			close(started)
			<-c.Done()
			released <- c.Err()
			return success("BAYC")(c, network, address)
		}).Once()
	s.metadata.On("ResolveContract", mock.Anything, "polygon", whiteRabbit).Return(success("White Rabbit")).Once()

	_, err := s.im.Submit(s.ctx, v.Id, "polygon", bayc)
	s.Require().NoError(err)
	<-started
	_, err = s.im.Submit(s.ctx, v.Id, "polygon", whiteRabbit)
	s.Require().NoError(err)

	// the superseded run is cancelled and its late result dropped
	select {
	case err := <-released:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		s.FailNow("superseded run not cancelled")
	}

	done := s.wait(v.Id)
	s.Equal(uint64(2), done.Generation)
	s.Equal(domain.StateSuccess, done.Outcome.State)
	s.Equal(whiteRabbit, done.Outcome.Address)
	s.Equal("White Rabbit", *done.Outcome.Metadata.Name)

	time.Sleep(20 * time.Millisecond)
	got, _ := s.im.Get(s.ctx, v.Id)
	s.Equal(whiteRabbit, got.Outcome.Address)
}

func (s *viewSuite) TestRunPanicBecomesFailure() {
	v, _ := s.im.Create(s.ctx)
	s.metadata.On("ResolveContract", mock.Anything, "polygon", bayc).Return(
		func(bCtx.Ctx, string, domain.Address) *domain.Outcome {
			panic("boom")
		}).Once()

	_, err := s.im.Submit(s.ctx, v.Id, "polygon", bayc)
	s.Require().NoError(err)

	done := s.wait(v.Id)
	s.Equal(domain.StateFailure, done.Outcome.State)
	s.Equal(domain.MessageFailure, done.Outcome.Message)
}

func (s *viewSuite) TestWaitEndsWithContext() {
	v, _ := s.im.Create(s.ctx)
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	s.metadata.On("ResolveContract", mock.Anything, "polygon", bayc).Return(
		func(c bCtx.Ctx, network string, address domain.Address) *domain.Outcome {
			close(started)
			<-release
			return success("BAYC")(c, network, address)
		}).Once()

	_, err := s.im.Submit(s.ctx, v.Id, "polygon", bayc)
	s.Require().NoError(err)
	<-started

	c, cancel := bCtx.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()
	got, err := s.im.Wait(c, v.Id)
	s.Require().NoError(err)
	s.Equal(domain.StatePending, got.Outcome.State)
}

func (s *viewSuite) TestDeleteCancelsRun() {
	v, _ := s.im.Create(s.ctx)
	cancelled := make(chan struct{})
	s.metadata.On("ResolveContract", mock.Anything, "polygon", bayc).Return(
		func(c bCtx.Ctx, network string, address domain.Address) *domain.Outcome {
			<-c.Done()
			close(cancelled)
			return domain.FailureOutcome("", domain.ReasonFetchError, c.Err())
		}).Once()

	_, err := s.im.Submit(s.ctx, v.Id, "polygon", bayc)
	s.Require().NoError(err)
	s.Require().NoError(s.im.Delete(s.ctx, v.Id))

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		s.FailNow("run not cancelled")
	}
	_, err = s.im.Get(s.ctx, v.Id)
	s.ErrorIs(err, domain.ErrNotFound)
}
