package services

import (
	"rongshu/internal/db"
	"rongshu/internal/models"
	"rongshu/internal/utils"
)

// PostVoteAnalytics 单篇帖子的投票分析快照
type PostVoteAnalytics struct {
	PostID             uint                      `json:"post_id"`
	Title              string                    `json:"title"`
	Statistics         models.PostVoteStatistics `json:"statistics"`
	UpvotePercentage   float64                   `json:"upvote_percentage"`
	DownvotePercentage float64                   `json:"downvote_percentage"`
	MostCommonReaction string                    `json:"most_common_reaction"`
}

// UserVoteAnalytics 用户全部帖子的投票分析
type UserVoteAnalytics struct {
	TotalPosts          int                `json:"total_posts"`
	TotalVotesReceived  int                `json:"total_votes_received"`
	AverageVotesPerPost float64            `json:"average_votes_per_post"`
	MostUpvotedPost     *PostVoteAnalytics `json:"most_upvoted_post"`
	MostDownvotedPost   *PostVoteAnalytics `json:"most_downvoted_post"`
	MostReactedPost     *PostVoteAnalytics `json:"most_reacted_post"`
}

// GetUserVoteAnalytics 聚合用户帖子的投票数据。
// 最高值平手时取遍历顺序中先出现的帖子
func GetUserVoteAnalytics(userID uint) (UserVoteAnalytics, error) {
	var posts []models.Post
	if err := db.DB.Where("user_id = ?", userID).Order("id ASC").Find(&posts).Error; err != nil {
		return UserVoteAnalytics{}, err
	}

	if len(posts) == 0 {
		return UserVoteAnalytics{}, nil
	}

	postIDs := make([]uint, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	var statRows []models.PostVoteStatistics
	if err := db.DB.Where("post_id IN ?", postIDs).Find(&statRows).Error; err != nil {
		return UserVoteAnalytics{}, err
	}
	statsByPost := make(map[uint]models.PostVoteStatistics, len(statRows))
	for _, row := range statRows {
		statsByPost[row.PostID] = row
	}

	analytics := UserVoteAnalytics{TotalPosts: len(posts)}

	var mostUpvoted, mostDownvoted, mostReacted *models.Post
	var maxUp, maxDown, maxTotal = -1, -1, -1

	for i := range posts {
		stats := statsByPost[posts[i].ID]
		analytics.TotalVotesReceived += stats.TotalVotes

		if stats.Upvotes > maxUp {
			maxUp = stats.Upvotes
			mostUpvoted = &posts[i]
		}
		if stats.Downvotes > maxDown {
			maxDown = stats.Downvotes
			mostDownvoted = &posts[i]
		}
		if stats.TotalVotes > maxTotal {
			maxTotal = stats.TotalVotes
			mostReacted = &posts[i]
		}
	}

	analytics.AverageVotesPerPost = float64(analytics.TotalVotesReceived) / float64(len(posts))
	analytics.MostUpvotedPost = buildPostAnalytics(mostUpvoted, statsByPost)
	analytics.MostDownvotedPost = buildPostAnalytics(mostDownvoted, statsByPost)
	analytics.MostReactedPost = buildPostAnalytics(mostReacted, statsByPost)

	return analytics, nil
}

func buildPostAnalytics(post *models.Post, statsByPost map[uint]models.PostVoteStatistics) *PostVoteAnalytics {
	if post == nil {
		return nil
	}
	stats, ok := statsByPost[post.ID]
	if !ok {
		return nil
	}

	total := stats.TotalVotes
	if total == 0 {
		total = 1 // 防止除零，百分比按 0 票处理
	}

	counts := map[string]int{
		models.ReactionLike:  stats.LikeCount,
		models.ReactionLove:  stats.LoveCount,
		models.ReactionHaha:  stats.HahaCount,
		models.ReactionWow:   stats.WowCount,
		models.ReactionSad:   stats.SadCount,
		models.ReactionAngry: stats.AngryCount,
	}

	return &PostVoteAnalytics{
		PostID:             post.ID,
		Title:              post.Title,
		Statistics:         stats,
		UpvotePercentage:   float64(stats.Upvotes) / float64(total) * 100,
		DownvotePercentage: float64(stats.Downvotes) / float64(total) * 100,
		MostCommonReaction: utils.MostCommonReaction(counts),
	}
}
