package domain

func item(id, time, duration string, category Category, activity, notes string) ScheduleItem {
	return ScheduleItem{ID: id, Time: time, Duration: duration, Category: category, Activity: activity, Notes: notes}
}

// DefaultSchedule returns a fresh copy of the starter weekly plan.
func DefaultSchedule() Schedule {
	return Schedule{
		Monday: {
			item("mon-1", "8:00-9:00", "1h", CategoryAnchor, "Morning Anchor", "Wake up, breakfast, school prep"),
			item("mon-2", "9:00-15:00", "6h", CategorySchool, "School Classes", "Fixed commitment"),
			item("mon-3", "15:00-15:30", "30m", CategoryTransition, "Transition", "Commute home, quick reset"),
			item("mon-4", "15:30-17:00", "1h30m", CategoryGym, "Gym (Priority 1)", "Fixed appointment - don't skip"),
			item("mon-5", "17:00-17:30", "30m", CategoryRecovery, "Recovery", "Daily walk/social"),
			item("mon-6", "17:30-19:30", "2h", CategoryDeepWork, "Deep Work", "Project/Assignment block"),
			item("mon-7", "19:30-20:30", "1h", CategoryMaintenance, "Maintenance", "Cook dinner & eat"),
			item("mon-8", "20:30-23:30", "3h", CategoryPersonal, "Personal/Prep", "Internship prep, typing (30m)"),
		},
		Tuesday: {
			item("tue-1", "7:00-8:00", "1h", CategoryAnchor, "Morning Anchor", "Wake early, breakfast, 10min chore"),
			item("tue-2", "8:00-18:00", "10h", CategorySchool, "School Classes", "Longest day"),
			item("tue-3", "18:00-18:30", "30m", CategoryTransition, "Transition", "Commute home"),
			item("tue-4", "18:30-20:30", "2h", CategoryDeepWork, "Deep Work - Cybersecurity", "Career priority"),
			item("tue-5", "20:30-21:30", "1h", CategoryMaintenance, "Maintenance", "Cook dinner & eat"),
			item("tue-6", "21:30-22:00", "30m", CategoryRecovery, "Recovery", "Walk/social, break from screens"),
			item("tue-7", "22:00-23:30", "1h30m", CategoryPersonal, "Wind Down", "Prep for tomorrow, lights out 23:30"),
		},
		Wednesday: {
			item("wed-1", "8:00-9:00", "1h", CategoryAnchor, "Morning Anchor", "Wake up, breakfast, school prep"),
			item("wed-2", "9:00-16:00", "7h", CategorySchool, "School Classes", "Fixed commitment"),
			item("wed-3", "16:00-16:30", "30m", CategoryTransition, "Transition", "Commute home"),
			item("wed-4", "16:30-18:00", "1h30m", CategoryGym, "Project or Gym (Flex)", "Choose based on weekly gym goal"),
			item("wed-5", "18:00-19:00", "1h", CategoryMaintenance, "Maintenance", "Cook dinner & eat"),
			item("wed-6", "19:00-19:30", "30m", CategoryRecovery, "Recovery", "Daily walk/social"),
			item("wed-7", "19:30-21:30", "2h", CategoryDeepWork, "Deep Work", "Mid-week push on school"),
			item("wed-8", "21:30-23:30", "2h", CategoryPersonal, "Wind Down", "Touch typing (30m), personal time"),
		},
		Thursday: {
			item("thu-1", "8:30-9:00", "30m", CategoryAnchor, "Morning Anchor", "Wake up, breakfast"),
			item("thu-2", "9:00-11:00", "2h", CategoryGym, "Gym + Groceries", "Get logistics done early"),
			item("thu-3", "11:00-11:30", "30m", CategoryTransition, "Transition", "Daily walk/social"),
			item("thu-4", "11:30-13:00", "1h30m", CategoryDeepWork, "Deep Work - Cybersecurity", "Primary focus"),
			item("thu-5", "13:00-14:00", "1h", CategoryMaintenance, "Maintenance", "Cook lunch & eat"),
			item("thu-6", "14:00-16:30", "2h30m", CategorySchool, "School Ahead", "Project/Internship applications"),
			item("thu-7", "16:30-18:00", "1h30m", CategoryPersonal, "Student Job/Flex", "Optional work or learning"),
			item("thu-8", "18:00-23:30", "5h30m", CategorySocial, "Social/Personal", "Flexible evening"),
		},
		Friday: {
			item("fri-1", "8:30-10:00", "1h30m", CategoryAnchor, "Morning Anchor", "Wake up, breakfast"),
			item("fri-2", "10:00-12:00", "2h", CategoryDeepWork, "Deep Work", "Finish workweek strong"),
			item("fri-3", "12:00-13:00", "1h", CategoryMaintenance, "Maintenance", "Cook lunch, commute prep"),
			item("fri-4", "13:00-14:00", "1h", CategoryTransition, "Transition", "Travel to school, typing (30m)"),
			item("fri-5", "14:00-18:00", "4h", CategorySchool, "School Classes", "Fixed commitment"),
			item("fri-6", "18:00-19:00", "1h", CategoryMaintenance, "Maintenance", "Commute home, quick tidy"),
			item("fri-7", "19:00-23:30", "4h30m", CategorySocial, "Protected Date Night", "Dinner & quality time"),
		},
		Saturday: {
			item("sat-1", "Morning", "1h30m", CategoryGym, "Gym Session (Priority 2)", "Set fixed time Saturday morning"),
			item("sat-2", "Midday", "2h", CategoryMaintenance, "Deep Chore/House Reset", "Get the big clean done"),
			item("sat-3", "Afternoon", "Flexible", CategoryPersonal, "Balance/Flex", "Project/study catch-up or social"),
		},
		Sunday: {
			item("sun-1", "9:00-15:00", "6h", CategoryChurch, "Church", "Fixed commitment"),
			item("sun-2", "15:00-17:00", "2h", CategoryGym, "Gym Session (Priority 3)", "Sunday afternoon workout"),
			item("sun-3", "17:00-20:00", "3h", CategoryPlanning, "Meal Prep & Weekly Planning", "Your discipline block"),
			item("sun-4", "20:00-23:30", "3h30m", CategoryPersonal, "Recharge", "Relaxation time"),
		},
	}
}

// DefaultTemplates returns the starter quick-add templates.
func DefaultTemplates() []Template {
	return []Template{
		{Category: CategoryGym, Activity: "Gym Session", Duration: "1h30m"},
		{Category: CategoryDeepWork, Activity: "Deep Work", Duration: "2h"},
		{Category: CategoryMaintenance, Activity: "Cook & Eat", Duration: "1h"},
		{Category: CategoryRecovery, Activity: "Walk", Duration: "30m"},
		{Category: CategoryPlanning, Activity: "Weekly Planning", Duration: "1h"},
	}
}
