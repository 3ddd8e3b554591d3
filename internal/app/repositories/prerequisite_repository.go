package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
)

// PrerequisiteRepository reads prerequisite groups and their members
type PrerequisiteRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewPrerequisiteRepository creates a new PrerequisiteRepository
func NewPrerequisiteRepository(db DBTX) *PrerequisiteRepository {
	return &PrerequisiteRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetGroupsByCourseIDs retrieves the groups whose dependent course is one of courseIDs
func (r *PrerequisiteRepository) GetGroupsByCourseIDs(ctx context.Context, courseIDs []string) ([]*models.PrerequisiteGroup, error) {
	if len(courseIDs) == 0 {
		return []*models.PrerequisiteGroup{}, nil
	}

	sql, args, err := r.sb.Select("id", "course_id", "min_courses").
		From("requirement_groups").
		Where(squirrel.Eq{"course_id": courseIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get prerequisite groups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("courseCount", len(courseIDs)).Msg("Error executing get prerequisite groups query")
		return nil, fmt.Errorf("error querying prerequisite groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.PrerequisiteGroup{}
	for rows.Next() {
		group := &models.PrerequisiteGroup{}
		if err := rows.Scan(&group.ID, &group.CourseID, &group.MinCourses); err != nil {
			return nil, fmt.Errorf("error scanning prerequisite group row: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prerequisite group rows: %w", err)
	}

	return groups, nil
}

// GetMembersByGroupIDs retrieves the member rows of the given groups, plus
// member rows whose group is missing or has no dependent course. The latter
// surface as orphan groups in verification.
func (r *PrerequisiteRepository) GetMembersByGroupIDs(ctx context.Context, groupIDs []int64) ([]*models.PrerequisiteGroupMember, error) {
	if len(groupIDs) == 0 {
		return []*models.PrerequisiteGroupMember{}, nil
	}

	sql, args, err := r.sb.Select("m.group_id", "m.course_id").
		From("requirement_group_members m").
		LeftJoin("requirement_groups g ON g.id = m.group_id").
		Where(squirrel.Or{
			squirrel.Eq{"m.group_id": groupIDs},
			squirrel.Eq{"g.course_id": nil},
		}).
		OrderBy("m.group_id ASC", "m.course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get group members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("groupCount", len(groupIDs)).Msg("Error executing get group members query")
		return nil, fmt.Errorf("error querying group members: %w", err)
	}
	defer rows.Close()

	members := []*models.PrerequisiteGroupMember{}
	for rows.Next() {
		member := &models.PrerequisiteGroupMember{}
		if err := rows.Scan(&member.GroupID, &member.CourseID); err != nil {
			return nil, fmt.Errorf("error scanning group member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group member rows: %w", err)
	}

	return members, nil
}
