package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hackdash/dashboard-api/internal/dto"
	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/stretchr/testify/suite"
)

// MentorshipRequestHandlerTestSuite defines the test suite for MentorshipRequestHandler
type MentorshipRequestHandlerTestSuite struct {
	suite.Suite
	env              *testEnv
	organizer        *models.User
	participant      *models.User
	organizerToken   string
	participantToken string
}

// SetupTest runs before each test
func (suite *MentorshipRequestHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
	suite.organizer = suite.env.createUser(suite.T(), "organizer@test.com", models.RoleOrganizer)
	suite.participant = suite.env.createUser(suite.T(), "participant@test.com", models.RoleParticipant)
	suite.organizerToken = suite.env.tokenFor(suite.T(), suite.organizer)
	suite.participantToken = suite.env.tokenFor(suite.T(), suite.participant)
}

func (suite *MentorshipRequestHandlerTestSuite) createRequest(token, title string) dto.MentorshipRequestDTO {
	payload := map[string]any{
		"title":           title,
		"description":     "Stuck on a deadlock",
		"technology_used": "Go",
		"urgency":         2,
	}
	w := suite.env.request(suite.T(), http.MethodPost, "/api/mentorship_requests", payload, token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var request dto.MentorshipRequestDTO
	decodeJSON(suite.T(), w, &request)
	return request
}

func (suite *MentorshipRequestHandlerTestSuite) TestCreateRequest() {
	request := suite.createRequest(suite.participantToken, "Help with channels")

	suite.Equal(suite.participant.ID, request.ParticipantUserID)
	suite.Nil(request.MentorUserID)
	suite.False(request.Resolved)
}

func (suite *MentorshipRequestHandlerTestSuite) TestCreateRequest_SecondOpenRequestRejected() {
	suite.createRequest(suite.participantToken, "First question")

	payload := map[string]any{"title": "Second question"}
	w := suite.env.request(suite.T(), http.MethodPost, "/api/mentorship_requests", payload, suite.participantToken)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *MentorshipRequestHandlerTestSuite) TestGetRequest_ParticipantCannotViewOthers() {
	request := suite.createRequest(suite.participantToken, "Private question")

	other := suite.env.createUser(suite.T(), "other@test.com", models.RoleParticipant)

	w := suite.env.request(suite.T(), http.MethodGet,
		fmt.Sprintf("/api/mentorship_requests/%d", request.ID), nil, suite.env.tokenFor(suite.T(), other))

	suite.Equal(http.StatusForbidden, w.Code)

	// The requester sees their own ticket.
	w = suite.env.request(suite.T(), http.MethodGet,
		fmt.Sprintf("/api/mentorship_requests/%d", request.ID), nil, suite.participantToken)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MentorshipRequestHandlerTestSuite) TestListRequests_OrganizerOnly() {
	suite.createRequest(suite.participantToken, "Help with channels")

	w := suite.env.request(suite.T(), http.MethodGet, "/api/mentorship_requests", nil, suite.participantToken)

	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.env.request(suite.T(), http.MethodGet, "/api/mentorship_requests", nil, suite.organizerToken)

	suite.Equal(http.StatusOK, w.Code)

	var requests []dto.MentorshipRequestDTO
	decodeJSON(suite.T(), w, &requests)
	suite.Len(requests, 1)
}

func (suite *MentorshipRequestHandlerTestSuite) TestUpdateRequest_Resolve() {
	request := suite.createRequest(suite.participantToken, "Help with channels")

	payload := map[string]any{
		"title":    "Help with channels",
		"resolved": true,
	}
	w := suite.env.request(suite.T(), http.MethodPut,
		fmt.Sprintf("/api/mentorship_requests/%d", request.ID), payload, suite.participantToken)

	suite.Equal(http.StatusOK, w.Code)

	var updated dto.MentorshipRequestDTO
	decodeJSON(suite.T(), w, &updated)
	suite.True(updated.Resolved)
}

func (suite *MentorshipRequestHandlerTestSuite) TestSetMentor() {
	request := suite.createRequest(suite.participantToken, "Help with channels")
	mentor := suite.env.createUser(suite.T(), "mentor@test.com", models.RoleOrganizer)

	w := suite.env.request(suite.T(), http.MethodPost,
		fmt.Sprintf("/api/mentorship_requests/%d/mentor/%d", request.ID, mentor.ID), nil, suite.organizerToken)

	suite.Equal(http.StatusOK, w.Code)

	var updated dto.MentorshipRequestDTO
	decodeJSON(suite.T(), w, &updated)
	suite.Require().NotNil(updated.MentorUserID)
	suite.Equal(mentor.ID, *updated.MentorUserID)
}

func (suite *MentorshipRequestHandlerTestSuite) TestSetParticipant_OrganizerOnly() {
	request := suite.createRequest(suite.participantToken, "Help with channels")
	other := suite.env.createUser(suite.T(), "other@test.com", models.RoleParticipant)

	w := suite.env.request(suite.T(), http.MethodPost,
		fmt.Sprintf("/api/mentorship_requests/%d/participant/%d", request.ID, other.ID), nil, suite.participantToken)

	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.env.request(suite.T(), http.MethodPost,
		fmt.Sprintf("/api/mentorship_requests/%d/participant/%d", request.ID, other.ID), nil, suite.organizerToken)

	suite.Equal(http.StatusOK, w.Code)

	var updated dto.MentorshipRequestDTO
	decodeJSON(suite.T(), w, &updated)
	suite.Equal(other.ID, updated.ParticipantUserID)
}

func (suite *MentorshipRequestHandlerTestSuite) TestDeleteRequest() {
	request := suite.createRequest(suite.participantToken, "Help with channels")

	w := suite.env.request(suite.T(), http.MethodDelete,
		fmt.Sprintf("/api/mentorship_requests/%d", request.ID), nil, suite.participantToken)

	suite.Equal(http.StatusOK, w.Code)

	w = suite.env.request(suite.T(), http.MethodGet,
		fmt.Sprintf("/api/mentorship_requests/%d", request.ID), nil, suite.participantToken)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestMentorshipRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MentorshipRequestHandlerTestSuite))
}
