package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/bethropolis/jdiff/internal/config"
	"github.com/bethropolis/jdiff/internal/database"
	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
)

// Store is the registry slice that executes ActionExecuteCommand. Results
// come back as follow-up actions, usually a status message.
type Store struct {
	commands    *Registry
	env         Env
	ctx         context.Context
	project     database.Project
	projectName string
}

// NewStore creates a store running commands from registry. ctx bounds the
// blocking work commands do; nil means context.Background.
func NewStore(ctx context.Context, registry *Registry, env Env) *Store {
	if ctx == nil {
		ctx = context.Background()
	}
	if env.Project == "" {
		env.Project = config.DefaultProjectName
	}
	return &Store{commands: registry, env: env, ctx: ctx, projectName: env.Project}
}

// Handle implements store.Store.
func (s *Store) Handle(a input.ActionEvent) []input.ActionEvent {
	if a.Action != input.ActionExecuteCommand {
		return nil
	}
	follow, err := s.Execute(a.Text)
	if err != nil {
		name, _ := Parse(a.Text)
		if errors.Is(err, ErrUnknownCommand) {
			follow = append(follow, input.SetStatus(fmt.Sprintf("Unknown command: %s", name)))
		} else {
			follow = append(follow, input.SetStatus(fmt.Sprintf("Error executing command '%s': %v", name, err)))
		}
	}
	return follow
}

// Execute runs one command line and returns the actions it submitted.
func (s *Store) Execute(line string) ([]input.ActionEvent, error) {
	name, args := Parse(line)
	if name == "" {
		return nil, nil
	}
	fn, ok := s.commands.Lookup(name)
	if !ok {
		logger.Debugf("Commands: unknown command ':%s'", name)
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	logger.Debugf("Commands: executing ':%s' with args %v", name, args)
	c := &Context{ctx: s.ctx, store: s}
	if err := fn(c, args); err != nil {
		logger.Warnf("Commands: ':%s' failed: %v", name, err)
		return c.pending, err
	}
	return c.pending, nil
}

// ProjectName returns the name of the current project.
func (s *Store) ProjectName() string {
	return s.projectName
}

func (s *Store) currentProject(ctx context.Context) (database.Project, error) {
	if s.env.DB == nil {
		return database.Project{}, ErrNoDatabase
	}
	if s.project.ID != 0 && s.project.Name == s.projectName {
		return s.project, nil
	}
	p, err := s.env.DB.Projects().Ensure(ctx, s.projectName)
	if err != nil {
		return database.Project{}, err
	}
	s.project = p
	return p, nil
}
