package services

import "errors"

var (
	// ErrDuplicatePath rejects inserting an item whose path already exists
	// (case-insensitively) in the owning project.
	ErrDuplicatePath = errors.New("an item with this path already exists in the project")

	// ErrCycle rejects a reparent that would make a project its own ancestor.
	ErrCycle = errors.New("cannot move a project inside its own subtree")

	// ErrReservedGroup rejects create/rename/delete of the virtual "all" group.
	ErrReservedGroup = errors.New("the \"all\" group is reserved")
)
