package catalog

import "clubhub/internal/domain"

var builtinSpots = []domain.Spot{
	{Name: "Squirrel Watchers", Type: "Social", URL: "https://media.npr.org/assets/img/2017/04/25/istock-115796521-fcf434f36d3d0865301cdcb9c996cfd80578ca99-s1100-c15.jpg"},
	{Name: "Geoff Fan Club", Type: "Cult"},
	{Name: "Pre-Vet Club", Type: "Professional", URL: "https://vet.tufts.edu/wp-content/uploads/students-in-hospitals-sa-657-848x1024.jpg"},
	{Name: "Historical European Martial Arts", Type: "Sports, Historical", URL: "https://assets3.thrillist.com/v1/image/1758887/size/tmg-article_default_mobile.jpg"},
	{Name: "Illini Powerlifting", Type: "Sports, Competitive", URL: "https://se-infra-imageserver2.azureedge.net/clink/images/137d81d5-137d-4c62-868f-0a8bf6234a1eefce6bbc-a0d2-40c7-ab9f-9d8036a8e0a0.jpg?preset=w1500"},
	{Name: "104°: The Illini Hot Tub Club", Type: "Social", URL: "https://i.pinimg.com/736x/c0/a1/ae/c0a1aeeef1ef5b553b8c3c9d15087cc8.jpg"},
	{Name: "Iron Man Fan Club", Type: "Social", URL: "https://storage.googleapis.com/stateless-www-popaxiom-com/2019/04/02df6f97-iron-man-walk-away-from-explosions-e1554923227474.jpg"},
	{Name: "Illini Star Gazers", Type: "Hobby", URL: "https://fsmedia.imgix.net/16/3c/54/65/d2f5/410f/9e32/784f03602f30/astronomyjpg.jpeg?rect=0%2C103%2C1920%2C959&auto=format%2Ccompress&dpr=2&w=650"},
	{Name: "Falling Illini", Type: "Thrilling, Social", URL: "https://i1.wp.com/skysthelimit.net/wp-content/uploads/14-Things-You-Should-Know-Before-You-Go-Skydiving.jpg?fit=625%2C420&ssl=1"},
	{Name: "Let's Bake This Bread", Type: "Delicious", URL: "https://i1.wp.com/ksmmetalfabrication.com/wp-content/uploads/2017/09/iStock-517075416-3.jpg?ssl=1"},
}
