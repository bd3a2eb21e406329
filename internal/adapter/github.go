package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

const (
	githubIssuesPath  = "/repos/{repository}/issues"
	githubAcceptValue = "application/vnd.github.v3+json"
)

type githubClient struct {
	client     *utils.HTTPClient
	token      string
	repository string
	logger     *logger.Logger
}

// NewGitHubClient constructs a [TicketTracker] creating issues in
// cfg.Repository. An empty token yields a client that always returns
// [ErrNotConfigured].
func NewGitHubClient(cfg config.GitHub, timeout time.Duration, logger *logger.Logger) TicketTracker {
	if cfg.Token == "" || cfg.Repository == "" {
		logger.Warn().Str("func", "NewGitHubClient").Msg("github token or repository is not set, ticket mirroring is disabled")
	}

	return &githubClient{
		client:     utils.NewHTTPClient(cfg.APIURL, timeout),
		token:      cfg.Token,
		repository: cfg.Repository,
		logger:     logger,
	}
}

// CreateIssue implements [TicketTracker] via POST /repos/{owner}/{repo}/issues.
// Only HTTP 201 counts as created.
func (g *githubClient) CreateIssue(ctx context.Context, ticket models.Ticket) (models.CreatedTicket, error) {
	if g.token == "" || g.repository == "" {
		return models.CreatedTicket{}, ErrNotConfigured
	}

	var created models.CreatedTicket
	resp, err := g.client.R().
		SetContext(ctx).
		SetRawPathParam("repository", g.repository).
		SetHeader("Authorization", "token "+g.token).
		SetHeader("Accept", githubAcceptValue).
		SetHeader("Content-Type", "application/json").
		SetBody(ticket).
		SetResult(&created).
		Post(githubIssuesPath)
	if err != nil {
		return models.CreatedTicket{}, fmt.Errorf("github create issue request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusCreated); err != nil {
		return models.CreatedTicket{}, err
	}
	if created.Number == 0 {
		return models.CreatedTicket{}, fmt.Errorf("%w: issue number is missing", ErrUnexpectedStatus)
	}

	return created, nil
}
