// Package publish commits an export tree into a git repository, the
// boundary a hosted static-site target pulls from. Publishing never
// touches the in-memory document: a failed attempt is retryable as-is.
package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/uuid"

	"github.com/foliokit/folio/internal/export"
	"github.com/foliokit/folio/internal/logger"
	folioerrors "github.com/foliokit/folio/pkg/errors"
)

const (
	defaultBranch  = "main"
	defaultRemote  = "origin"
	defaultMessage = "Publish portfolio"
	defaultAuthor  = "Folio"
	defaultEmail   = "folio@localhost"
)

// Options configures a publish attempt.
type Options struct {
	// RepoPath is the working directory of the target repository. It is
	// initialized if it is not a repository yet.
	RepoPath string
	// Branch receives the commit. Defaults to main.
	Branch string
	// RemoteURL, when set, is registered as the origin remote on a
	// fresh repository.
	RemoteURL string
	// Push sends the branch to origin after committing.
	Push bool

	AuthorName  string
	AuthorEmail string
	Message     string
}

// Result describes a completed publish attempt.
type Result struct {
	AttemptID  string
	CommitHash string
	Committed  bool
	FileCount  int
}

// Publisher writes export trees into git repositories.
type Publisher struct {
	log *logger.Logger
}

// New creates a Publisher.
func New(log *logger.Logger) *Publisher {
	return &Publisher{log: log.WithComponent("publisher")}
}

// Publish writes tree into the repository at opts.RepoPath and commits
// it on the configured branch, pushing if requested. When the tree
// matches what is already committed, no commit is made and the attempt
// still succeeds.
func (p *Publisher) Publish(ctx context.Context, tree *export.Tree, opts Options) (*Result, error) {
	if tree == nil || tree.Len() == 0 {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "nothing to publish", nil)
	}
	if opts.RepoPath == "" {
		return nil, folioerrors.NewPublishError("", "repository path is required", nil)
	}
	applyDefaults(&opts)

	attempt := uuid.NewString()
	log := p.log.WithFields(map[string]any{"attempt": attempt, "repo": opts.RepoPath, "branch": opts.Branch})

	repo, err := p.openOrInit(opts)
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "open worktree", err)
	}

	if err := p.selectBranch(repo, wt, opts.Branch); err != nil {
		return nil, err
	}

	if err := tree.WriteDir(opts.RepoPath); err != nil {
		return nil, err
	}
	for _, f := range tree.Files() {
		if _, err := wt.Add(f.Path); err != nil {
			return nil, folioerrors.NewPublishError(opts.RepoPath, fmt.Sprintf("stage %s", f.Path), err)
		}
	}

	status, err := wt.Status()
	if err != nil {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "read status", err)
	}
	result := &Result{AttemptID: attempt, FileCount: tree.Len()}
	if status.IsClean() {
		log.Info("no changes since last publish")
		return result, nil
	}

	hash, err := wt.Commit(opts.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  opts.AuthorName,
			Email: opts.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "commit", err)
	}
	result.CommitHash = hash.String()
	result.Committed = true
	log.WithFields(map[string]any{"commit": result.CommitHash}).Info("published export tree")

	if opts.Push {
		if err := p.push(ctx, repo, opts); err != nil {
			return nil, err
		}
		log.Info("pushed to remote")
	}

	return result, nil
}

func applyDefaults(opts *Options) {
	if opts.Branch == "" {
		opts.Branch = defaultBranch
	}
	if opts.Message == "" {
		opts.Message = defaultMessage
	}
	if opts.AuthorName == "" {
		opts.AuthorName = defaultAuthor
	}
	if opts.AuthorEmail == "" {
		opts.AuthorEmail = defaultEmail
	}
}

func (p *Publisher) openOrInit(opts Options) (*git.Repository, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "open repository", err)
	}

	if err := os.MkdirAll(opts.RepoPath, 0o755); err != nil {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "create repository directory", err)
	}
	repo, err = git.PlainInit(opts.RepoPath, false)
	if err != nil {
		return nil, folioerrors.NewPublishError(opts.RepoPath, "init repository", err)
	}
	p.log.WithFields(map[string]any{"repo": opts.RepoPath}).Info("initialized repository")

	if opts.RemoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: defaultRemote,
			URLs: []string{opts.RemoteURL},
		})
		if err != nil {
			return nil, folioerrors.NewPublishError(opts.RepoPath, "configure remote", err)
		}
	}

	return repo, nil
}

// selectBranch points the worktree at the target branch. On a freshly
// initialized repository HEAD is unborn, so the branch is selected by
// rewriting the symbolic reference instead of checking out.
func (p *Publisher) selectBranch(repo *git.Repository, wt *git.Worktree, branch string) error {
	ref := plumbing.NewBranchReferenceName(branch)

	head, err := repo.Head()
	if err != nil {
		return repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, ref))
	}
	if head.Name() == ref {
		return nil
	}

	err = wt.Checkout(&git.CheckoutOptions{Branch: ref})
	if err != nil {
		err = wt.Checkout(&git.CheckoutOptions{Branch: ref, Create: true})
	}
	if err != nil {
		return folioerrors.NewPublishError(branch, "checkout branch", err)
	}
	return nil
}

func (p *Publisher) push(ctx context.Context, repo *git.Repository, opts Options) error {
	err := repo.PushContext(ctx, &git.PushOptions{RemoteName: defaultRemote})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return folioerrors.NewPublishError(opts.RemoteURL, "push", err)
	}
	return nil
}
