package compiler

import (
	"go/ast"
)

// appendComment appends a paragraph to the lines of a doc comment.
func appendComment(comments []*ast.Comment, text string) []*ast.Comment {
	if len(comments) > 0 {
		comments = append(comments, &ast.Comment{
			Text: "//",
		})
	}
	return append(comments, &ast.Comment{
		Text: text,
	})
}

func commentGroupsOf(file *ast.File) []*ast.CommentGroup {
	groups := make([]*ast.CommentGroup, 0, 1+len(file.Comments))
	groups = append(groups, file.Comments...)
	if file.Doc != nil {
		groups = append(groups, file.Doc)
	}
	return groups
}
